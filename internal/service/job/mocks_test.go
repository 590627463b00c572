package job

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/search"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type jobRepoMock struct {
	CreateFunc    func(ctx context.Context, j *domain.Job) error
	UpdateFunc    func(ctx context.Context, j *domain.Job) error
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.Job, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Job, error)
	SearchFunc    func(ctx context.Context, q search.Query) ([]domain.Job, int, error)

	mu          sync.Mutex
	created     []domain.Job
	updated     []domain.Job
	searchCalls []search.Query
}

func (m *jobRepoMock) Create(ctx context.Context, j *domain.Job) error {
	m.mu.Lock()
	m.created = append(m.created, *j)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, j)
	}
	j.ID = 1
	return nil
}

func (m *jobRepoMock) Update(ctx context.Context, j *domain.Job) error {
	m.mu.Lock()
	m.updated = append(m.updated, *j)
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, j)
	}
	return nil
}

func (m *jobRepoMock) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *jobRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *jobRepoMock) Search(ctx context.Context, q search.Query) ([]domain.Job, int, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, q)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return []domain.Job{}, 0, nil
}

type companyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Company, error)
}

func (m *companyRepoMock) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type slugResolverMock struct {
	ResolveFunc func(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error)
}

func (m *slugResolverMock) Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, kind, label, excludeID)
	}
	return "job-slug", nil
}
