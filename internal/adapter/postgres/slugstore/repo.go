// Package slugstore answers slug existence checks for every entity kind.
package slugstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

// Repo looks up stored slugs.
type Repo struct {
	db postgres.Querier
}

// New creates a new slug store.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ExistingSlugs returns which of candidates are already stored for kind, in
// a single query. excludeID ignores that record's own row.
func (r *Repo) ExistingSlugs(ctx context.Context, kind domain.EntityKind, candidates []string, excludeID *int64) ([]string, error) {
	table := kind.Table()
	if table == "" {
		return nil, fmt.Errorf("slugstore: unknown entity kind %q", kind)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	b := postgres.Builder.
		Select("slug").
		From(table).
		Where(sq.Eq{"slug": candidates})
	if excludeID != nil {
		b = b.Where(sq.NotEq{"id": *excludeID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("slugstore: build query: %w", err)
	}

	var slugs []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &slugs, query, args...); err != nil {
		return nil, postgres.MapError(err, table+" slugs", nil)
	}
	return slugs, nil
}
