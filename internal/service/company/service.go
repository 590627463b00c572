// Package company implements employer profile creation.
package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/internal/slug"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) error
}

type slugResolver interface {
	Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error)
}

type structValidator interface {
	Struct(s any) error
}

// Service provides company operations.
type Service struct {
	companies companyRepo
	slugs     slugResolver
	validate  structValidator
	log       *slog.Logger
}

// NewService creates a new company service.
func NewService(log *slog.Logger, companies companyRepo, slugs slugResolver, validate structValidator) *Service {
	return &Service{
		companies: companies,
		slugs:     slugs,
		validate:  validate,
		log:       log.With("service", "company"),
	}
}

// CreateInput carries a raw company submission.
type CreateInput struct {
	Fields profile.Fields
}

type createFields struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	WebsiteURL  *string `json:"website_url" validate:"omitempty,url"`
	LogoPath    *string `json:"logo_path" validate:"omitempty,max=500"`
}

// Create stores a company owned by the caller; the slug is derived from the name.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p := profile.Normalize(input.Fields, profile.CompanySchema)
	name, _ := input.Fields.String("name")
	in := createFields{
		Name:        name,
		Description: input.Fields.OptionalString("description"),
		WebsiteURL:  p.URL("website_url").Apply(nil),
		LogoPath:    input.Fields.OptionalString("logo_path"),
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	c := &domain.Company{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
		LogoPath:    in.LogoPath,
	}

	_, err := slug.CreateWithRetry(ctx,
		func(ctx context.Context) (string, error) {
			return s.slugs.Resolve(ctx, domain.KindCompany, c.Name, nil)
		},
		func(ctx context.Context, sl string) error {
			c.Slug = sl
			return s.companies.Create(ctx, c)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	s.log.InfoContext(ctx, "company created", slog.Int64("company_id", c.ID), slog.String("slug", c.Slug))
	return c, nil
}
