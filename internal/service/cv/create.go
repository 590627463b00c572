package cv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/internal/slug"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

// Create normalizes the submission, assigns a slug derived from the full
// name and stores the CV for the calling user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.CV, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p := profile.Normalize(input.Fields, profile.CVSchema)

	var sc scalars
	sc.merge(input.Fields, p)
	if err := s.validate.Struct(sc); err != nil {
		return nil, err
	}

	c := &domain.CV{
		UserID:         userID,
		Skills:         p.Skills,
		Hobbies:        p.Hobbies,
		WorkExperience: p.WorkExperience,
		Education:      p.Education,
		Certifications: p.Certifications,
		Languages:      p.Languages,
		References:     p.References,
		Volunteer:      p.Volunteer,
	}
	sc.apply(c)
	c.IsPublic, _ = p.Flag("is_public")
	c.IsPrimary, _ = p.Flag("is_primary")

	_, err := slug.CreateWithRetry(ctx,
		func(ctx context.Context) (string, error) {
			return s.slugs.Resolve(ctx, domain.KindCV, c.FullName, nil)
		},
		func(ctx context.Context, sl string) error {
			c.Slug = sl
			return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
				if err := s.cvs.Create(txCtx, c); err != nil {
					return err
				}
				if c.IsPrimary {
					return s.cvs.ClearPrimary(txCtx, userID, c.ID)
				}
				return nil
			})
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create cv: %w", err)
	}

	s.log.InfoContext(ctx, "cv created",
		slog.Int64("cv_id", c.ID),
		slog.Int64("user_id", userID),
		slog.String("slug", c.Slug),
	)
	return c, nil
}
