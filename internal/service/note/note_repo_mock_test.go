package note

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access/accesstest"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	accesstest.RepositoryMock[domain.Note, uuid.UUID]
	ListByPatientFunc        func(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error)
	ListByParentGuardianFunc func(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error)
	ListByUserFunc           func(ctx context.Context, userID string) ([]domain.Note, error)

	calls struct {
		ListByPatient []struct {
			Ctx       context.Context
			PatientID uuid.UUID
		}
		ListByParentGuardian []struct {
			Ctx              context.Context
			ParentGuardianID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockListByPatient        sync.RWMutex
	lockListByParentGuardian sync.RWMutex
	lockListByUser           sync.RWMutex
}

func (mock *noteRepoMock) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error) {
	if mock.ListByPatientFunc == nil {
		panic("noteRepoMock.ListByPatientFunc: method is nil but noteRepo.ListByPatient was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		PatientID uuid.UUID
	}{Ctx: ctx, PatientID: patientID}
	mock.lockListByPatient.Lock()
	mock.calls.ListByPatient = append(mock.calls.ListByPatient, callInfo)
	mock.lockListByPatient.Unlock()
	return mock.ListByPatientFunc(ctx, patientID)
}

func (mock *noteRepoMock) ListByPatientCalls() []struct {
	Ctx       context.Context
	PatientID uuid.UUID
} {
	mock.lockListByPatient.RLock()
	calls := mock.calls.ListByPatient
	mock.lockListByPatient.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error) {
	if mock.ListByParentGuardianFunc == nil {
		panic("noteRepoMock.ListByParentGuardianFunc: method is nil but noteRepo.ListByParentGuardian was just called")
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

func (mock *noteRepoMock) ListByParentGuardianCalls() []struct {
	Ctx              context.Context
	ParentGuardianID uuid.UUID
} {
	mock.lockListByParentGuardian.RLock()
	calls := mock.calls.ListByParentGuardian
	mock.lockListByParentGuardian.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	if mock.ListByUserFunc == nil {
		panic("noteRepoMock.ListByUserFunc: method is nil but noteRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *noteRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
