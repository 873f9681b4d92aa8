// Package accesstest provides moq-style mocks of the generic access ports.
package accesstest

import (
	"context"
	"sync"

	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

var _ access.Repository[struct{}, int] = &RepositoryMock[struct{}, int]{}

// RepositoryMock is a mock implementation of access.Repository.
// Calling a method whose Func is nil panics.
type RepositoryMock[T any, K comparable] struct {
	GetByIDFunc func(ctx context.Context, id K) (*T, error)
	ListFunc    func(ctx context.Context) ([]T, error)
	CreateFunc  func(ctx context.Context, item *T) error
	UpdateFunc  func(ctx context.Context, item *T) error
	DeleteFunc  func(ctx context.Context, id K) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  K
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx  context.Context
			Item *T
		}
		Update []struct {
			Ctx  context.Context
			Item *T
		}
		Delete []struct {
			Ctx context.Context
			ID  K
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *RepositoryMock[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	if mock.GetByIDFunc == nil {
		panic("RepositoryMock.GetByIDFunc: method is nil but Repository.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  K
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *RepositoryMock[T, K]) GetByIDCalls() []struct {
	Ctx context.Context
	ID  K
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *RepositoryMock[T, K]) List(ctx context.Context) ([]T, error) {
	if mock.ListFunc == nil {
		panic("RepositoryMock.ListFunc: method is nil but Repository.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *RepositoryMock[T, K]) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *RepositoryMock[T, K]) Create(ctx context.Context, item *T) error {
	if mock.CreateFunc == nil {
		panic("RepositoryMock.CreateFunc: method is nil but Repository.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *T
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *RepositoryMock[T, K]) CreateCalls() []struct {
	Ctx  context.Context
	Item *T
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *RepositoryMock[T, K]) Update(ctx context.Context, item *T) error {
	if mock.UpdateFunc == nil {
		panic("RepositoryMock.UpdateFunc: method is nil but Repository.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *T
	}{Ctx: ctx, Item: item}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *RepositoryMock[T, K]) UpdateCalls() []struct {
	Ctx  context.Context
	Item *T
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *RepositoryMock[T, K]) Delete(ctx context.Context, id K) error {
	if mock.DeleteFunc == nil {
		panic("RepositoryMock.DeleteFunc: method is nil but Repository.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  K
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *RepositoryMock[T, K]) DeleteCalls() []struct {
	Ctx context.Context
	ID  K
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// Writes returns how many Create, Update and Delete calls were made.
func (mock *RepositoryMock[T, K]) Writes() int {
	return len(mock.CreateCalls()) + len(mock.UpdateCalls()) + len(mock.DeleteCalls())
}

// Reads returns how many GetByID and List calls were made.
func (mock *RepositoryMock[T, K]) Reads() int {
	return len(mock.GetByIDCalls()) + len(mock.ListCalls())
}

// Returning builds a GetByIDFunc that returns items by key and err for
// any other key.
func Returning[T any, K comparable](items map[K]T, err error) func(context.Context, K) (*T, error) {
	return func(_ context.Context, id K) (*T, error) {
		item, ok := items[id]
		if !ok {
			return nil, err
		}
		return &item, nil
	}
}
