// Package company implements company persistence using PostgreSQL.
package company

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

const entity = "company"

var columns = []string{
	"id", "user_id", "name", "slug", "description", "website_url",
	"logo_path", "created_at", "updated_at",
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts c and fills its ID and timestamps.
func (r *Repo) Create(ctx context.Context, c *domain.Company) error {
	query, args, err := postgres.Builder.
		Insert("companies").
		Columns("user_id", "name", "slug", "description", "website_url", "logo_path").
		Values(c.UserID, c.Name, c.Slug, c.Description, c.WebsiteURL, c.LogoPath).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build insert: %w", entity, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, entity, c.Slug)
	}
	return nil
}

// GetByID returns the company with the given ID.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetBySlug returns the company with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	return r.get(ctx, sq.Eq{"slug": slug}, slug)
}

func (r *Repo) get(ctx context.Context, where sq.Eq, key any) (*domain.Company, error) {
	query, args, err := postgres.Builder.Select(columns...).From("companies").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", entity, err)
	}

	var row companyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return row.toDomain(), nil
}

type companyRow struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	WebsiteURL  *string   `db:"website_url"`
	LogoPath    *string   `db:"logo_path"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row companyRow) toDomain() *domain.Company {
	return &domain.Company{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		WebsiteURL:  row.WebsiteURL,
		LogoPath:    row.LogoPath,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
