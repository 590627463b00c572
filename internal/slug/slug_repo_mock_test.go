package slug

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

var _ slugRepo = &slugRepoMock{}

type slugRepoMock struct {
	ExistingSlugsFunc func(ctx context.Context, kind domain.EntityKind, candidates []string, excludeID *int64) ([]string, error)

	calls struct {
		ExistingSlugs []struct {
			Ctx        context.Context
			Kind       domain.EntityKind
			Candidates []string
			ExcludeID  *int64
		}
	}
	lockExistingSlugs sync.RWMutex
}

func (mock *slugRepoMock) ExistingSlugs(ctx context.Context, kind domain.EntityKind, candidates []string, excludeID *int64) ([]string, error) {
	if mock.ExistingSlugsFunc == nil {
		panic("slugRepoMock.ExistingSlugsFunc: method is nil but slugRepo.ExistingSlugs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Kind       domain.EntityKind
		Candidates []string
		ExcludeID  *int64
	}{Ctx: ctx, Kind: kind, Candidates: candidates, ExcludeID: excludeID}
	mock.lockExistingSlugs.Lock()
	mock.calls.ExistingSlugs = append(mock.calls.ExistingSlugs, callInfo)
	mock.lockExistingSlugs.Unlock()
	return mock.ExistingSlugsFunc(ctx, kind, candidates, excludeID)
}

func (mock *slugRepoMock) ExistingSlugsCalls() []struct {
	Ctx        context.Context
	Kind       domain.EntityKind
	Candidates []string
	ExcludeID  *int64
} {
	mock.lockExistingSlugs.RLock()
	calls := mock.calls.ExistingSlugs
	mock.lockExistingSlugs.RUnlock()
	return calls
}
