package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/internal/slug"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

// Create publishes a job posting under a company owned by the caller.
// The slug is derived from the title.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p := profile.Normalize(input.Fields, profile.JobSchema)

	var ve domain.ValidationError
	sc := scalars{EmploymentType: string(domain.EmploymentFullTime)}
	sc.merge(input.Fields, p, &ve)
	if err := sc.check(s.validate, &ve); err != nil {
		return nil, err
	}

	if err := s.checkCompany(ctx, userID, sc.CompanyID); err != nil {
		return nil, err
	}

	j := &domain.Job{UserID: userID, Skills: p.Skills}
	sc.apply(j)
	j.IsRemote, _ = p.Flag("is_remote")
	j.IsFeatured, _ = p.Flag("is_featured")

	_, err := slug.CreateWithRetry(ctx,
		func(ctx context.Context) (string, error) {
			return s.slugs.Resolve(ctx, domain.KindJob, j.Title, nil)
		},
		func(ctx context.Context, sl string) error {
			j.Slug = sl
			return s.jobs.Create(ctx, j)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.log.InfoContext(ctx, "job created",
		slog.Int64("job_id", j.ID),
		slog.Int64("company_id", j.CompanyID),
		slog.String("slug", j.Slug),
	)
	return j, nil
}

// checkCompany verifies the company exists and belongs to userID.
func (s *Service) checkCompany(ctx context.Context, userID, companyID int64) error {
	c, err := s.companies.GetByID(ctx, companyID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("company_id", "not found")
	}
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	if c.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}
