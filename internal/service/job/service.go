// Package job implements job posting creation, updates and search.
package job

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/search"
)

type jobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	Update(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Job, error)
	Search(ctx context.Context, q search.Query) ([]domain.Job, int, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

type slugResolver interface {
	Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error)
}

type structValidator interface {
	Struct(s any) error
}

// Service provides job posting operations.
type Service struct {
	jobs       jobRepo
	companies  companyRepo
	slugs      slugResolver
	validate   structValidator
	compositor *search.Compositor
	log        *slog.Logger
}

// NewService creates a new job service.
func NewService(
	log *slog.Logger,
	jobs jobRepo,
	companies companyRepo,
	slugs slugResolver,
	validate structValidator,
	compositor *search.Compositor,
) *Service {
	return &Service{
		jobs:       jobs,
		companies:  companies,
		slugs:      slugs,
		validate:   validate,
		compositor: compositor,
		log:        log.With("service", "job"),
	}
}
