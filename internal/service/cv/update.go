package cv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

// Update applies a submission to an existing CV owned by the caller.
// Submitted list sections replace the stored ones; the slug never changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.CV, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.cvs.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}
	if c.UserID != userID {
		return nil, domain.ErrForbidden
	}

	p := profile.Normalize(input.Fields, profile.CVSchema)

	sc := scalarsOf(c)
	sc.merge(input.Fields, p)
	if err := s.validate.Struct(sc); err != nil {
		return nil, err
	}
	sc.apply(c)
	if v, ok := p.Flag("is_public"); ok {
		c.IsPublic = v
	}
	if v, ok := p.Flag("is_primary"); ok {
		c.IsPrimary = v
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cvs.UpdateScalars(txCtx, c); err != nil {
			return fmt.Errorf("update scalars: %w", err)
		}
		if len(p.Submitted) > 0 {
			if err := s.cvs.ReplaceSections(txCtx, c.ID, p); err != nil {
				return fmt.Errorf("replace sections: %w", err)
			}
		}
		if c.IsPrimary {
			if err := s.cvs.ClearPrimary(txCtx, userID, c.ID); err != nil {
				return fmt.Errorf("clear primary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update cv %d: %w", c.ID, err)
	}

	c.ApplySections(p)

	s.log.InfoContext(ctx, "cv updated",
		slog.Int64("cv_id", c.ID),
		slog.Int("sections", len(p.Submitted)),
	)
	return c, nil
}
