package job

import (
	"context"
	"fmt"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

// Update applies a submission to a posting owned by the caller. A submitted
// skills list replaces the stored one; the slug never changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	j, err := s.jobs.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if j.UserID != userID {
		return nil, domain.ErrForbidden
	}

	p := profile.Normalize(input.Fields, profile.JobSchema)

	var ve domain.ValidationError
	sc := scalarsOf(j)
	sc.merge(input.Fields, p, &ve)
	if err := sc.check(s.validate, &ve); err != nil {
		return nil, err
	}

	if sc.CompanyID != j.CompanyID {
		if err := s.checkCompany(ctx, userID, sc.CompanyID); err != nil {
			return nil, err
		}
	}

	sc.apply(j)
	if p.Submitted[domain.SectionSkills] {
		j.Skills = p.Skills
	}
	if v, ok := p.Flag("is_remote"); ok {
		j.IsRemote = v
	}
	if v, ok := p.Flag("is_featured"); ok {
		j.IsFeatured = v
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, fmt.Errorf("update job %d: %w", j.ID, err)
	}
	return j, nil
}

// GetBySlug returns a posting by slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	j, err := s.jobs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}
