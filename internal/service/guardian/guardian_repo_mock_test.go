package guardian

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access/accesstest"
)

var _ guardianRepo = &guardianRepoMock{}

type guardianRepoMock struct {
	accesstest.RepositoryMock[domain.ParentGuardian, uuid.UUID]

	ListByUserFunc  func(ctx context.Context, userID string) ([]domain.ParentGuardian, error)
	CountByUserFunc func(ctx context.Context, userID string) (int, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID string
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockListByUser  sync.RWMutex
	lockCountByUser sync.RWMutex
}

func (mock *guardianRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.ParentGuardian, error) {
	if mock.ListByUserFunc == nil {
		panic("guardianRepoMock.ListByUserFunc: method is nil but guardianRepo.ListByUser was just called")
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

func (mock *guardianRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *guardianRepoMock) CountByUser(ctx context.Context, userID string) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("guardianRepoMock.CountByUserFunc: method is nil but guardianRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *guardianRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}
