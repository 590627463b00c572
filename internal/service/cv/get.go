package cv

import (
	"context"
	"fmt"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

// GetBySlug returns a CV by slug. Private CVs are visible to their owner only;
// other callers get domain.ErrNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.CV, error) {
	c, err := s.cvs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}
	if !c.IsPublic {
		if userID, ok := ctxutil.UserIDFromCtx(ctx); !ok || userID != c.UserID {
			return nil, fmt.Errorf("cv %s: %w", slug, domain.ErrNotFound)
		}
	}
	return c, nil
}
