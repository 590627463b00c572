// Package searchevent implements the append-only search audit log using
// PostgreSQL.
package searchevent

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

const entity = "search_event"

// Repo provides search event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new search event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends e to the log and fills its ID and creation time.
// A nil Filters map is stored as NULL.
func (r *Repo) Create(ctx context.Context, e *domain.SearchEvent) error {
	filters, err := postgres.JSONB(e.Filters)
	if err != nil {
		return fmt.Errorf("%s filters: %w", entity, err)
	}

	query, args, err := postgres.Builder.
		Insert("search_events").
		Columns("query", "location", "filters", "result_count", "ip_address", "user_agent", "user_id").
		Values(e.Query, e.Location, filters, e.ResultCount, e.IPAddress, e.UserAgent, e.UserID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build insert: %w", entity, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return postgres.MapError(err, entity, nil)
	}
	return nil
}
