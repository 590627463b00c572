package searchaudit

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.SearchEvent) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.SearchEvent
		}
	}
	lockCreate sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.SearchEvent) error {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.SearchEvent
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.SearchEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
