package patient

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access/accesstest"
)

var _ patientRepo = &patientRepoMock{}

type patientRepoMock struct {
	accesstest.RepositoryMock[domain.Patient, uuid.UUID]

	ListByParentGuardianFunc func(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error)

	calls struct {
		ListByParentGuardian []struct {
			Ctx              context.Context
			ParentGuardianID uuid.UUID
		}
	}
	lockListByParentGuardian sync.RWMutex
}

func (mock *patientRepoMock) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error) {
	if mock.ListByParentGuardianFunc == nil {
		panic("patientRepoMock.ListByParentGuardianFunc: method is nil but patientRepo.ListByParentGuardian was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		ParentGuardianID uuid.UUID
	}{Ctx: ctx, ParentGuardianID: parentGuardianID}
	mock.lockListByParentGuardian.Lock()
	mock.calls.ListByParentGuardian = append(mock.calls.ListByParentGuardian, callInfo)
	mock.lockListByParentGuardian.Unlock()
	return mock.ListByParentGuardianFunc(ctx, parentGuardianID)
}

func (mock *patientRepoMock) ListByParentGuardianCalls() []struct {
	Ctx              context.Context
	ParentGuardianID uuid.UUID
} {
	mock.lockListByParentGuardian.RLock()
	calls := mock.calls.ListByParentGuardian
	mock.lockListByParentGuardian.RUnlock()
	return calls
}
