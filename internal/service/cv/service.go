// Package cv implements CV creation and updates: field-bag normalization,
// slug assignment and transactional persistence.
package cv

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

type cvRepo interface {
	Create(ctx context.Context, c *domain.CV) error
	GetByID(ctx context.Context, id int64) (*domain.CV, error)
	GetBySlug(ctx context.Context, slug string) (*domain.CV, error)
	UpdateScalars(ctx context.Context, c *domain.CV) error
	ReplaceSections(ctx context.Context, id int64, p domain.NormalizedProfile) error
	ClearPrimary(ctx context.Context, userID, exceptID int64) error
}

type slugResolver interface {
	Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type structValidator interface {
	Struct(s any) error
}

// Service provides CV operations.
type Service struct {
	cvs      cvRepo
	slugs    slugResolver
	tx       txManager
	validate structValidator
	log      *slog.Logger
}

// NewService creates a new CV service.
func NewService(
	log *slog.Logger,
	cvs cvRepo,
	slugs slugResolver,
	tx txManager,
	validate structValidator,
) *Service {
	return &Service{
		cvs:      cvs,
		slugs:    slugs,
		tx:       tx,
		validate: validate,
		log:      log.With("service", "cv"),
	}
}
