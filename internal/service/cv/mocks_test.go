package cv

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type cvRepoMock struct {
	CreateFunc          func(ctx context.Context, c *domain.CV) error
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.CV, error)
	GetBySlugFunc       func(ctx context.Context, slug string) (*domain.CV, error)
	UpdateScalarsFunc   func(ctx context.Context, c *domain.CV) error
	ReplaceSectionsFunc func(ctx context.Context, id int64, p domain.NormalizedProfile) error
	ClearPrimaryFunc    func(ctx context.Context, userID, exceptID int64) error

	mu           sync.Mutex
	createCalls  []domain.CV
	replaceCalls []domain.NormalizedProfile
	clearCalls   int
	updateCalls  int
}

func (m *cvRepoMock) Create(ctx context.Context, c *domain.CV) error {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, *c)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = 1
	return nil
}

func (m *cvRepoMock) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *cvRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.CV, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *cvRepoMock) UpdateScalars(ctx context.Context, c *domain.CV) error {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	if m.UpdateScalarsFunc != nil {
		return m.UpdateScalarsFunc(ctx, c)
	}
	return nil
}

func (m *cvRepoMock) ReplaceSections(ctx context.Context, id int64, p domain.NormalizedProfile) error {
	m.mu.Lock()
	m.replaceCalls = append(m.replaceCalls, p)
	m.mu.Unlock()
	if m.ReplaceSectionsFunc != nil {
		return m.ReplaceSectionsFunc(ctx, id, p)
	}
	return nil
}

func (m *cvRepoMock) ClearPrimary(ctx context.Context, userID, exceptID int64) error {
	m.mu.Lock()
	m.clearCalls++
	m.mu.Unlock()
	if m.ClearPrimaryFunc != nil {
		return m.ClearPrimaryFunc(ctx, userID, exceptID)
	}
	return nil
}

type slugResolverMock struct {
	ResolveFunc func(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error)

	mu     sync.Mutex
	labels []string
}

func (m *slugResolverMock) Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error) {
	m.mu.Lock()
	m.labels = append(m.labels, label)
	m.mu.Unlock()
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, kind, label, excludeID)
	}
	return "slug", nil
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
