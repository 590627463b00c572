// Package article implements article persistence using PostgreSQL.
package article

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

const entity = "article"

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a and fills its ID and creation time.
func (r *Repo) Create(ctx context.Context, a *domain.Article) error {
	query, args, err := postgres.Builder.
		Insert("articles").
		Columns("user_id", "title", "slug", "content", "is_published").
		Values(a.UserID, a.Title, a.Slug, a.Content, a.IsPublished).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build insert: %w", entity, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return postgres.MapError(err, entity, a.Slug)
	}
	return nil
}

// GetBySlug returns the article with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	query, args, err := postgres.Builder.
		Select("id", "user_id", "title", "slug", "content", "is_published", "created_at").
		From("articles").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", entity, err)
	}

	var row struct {
		ID          int64     `db:"id"`
		UserID      int64     `db:"user_id"`
		Title       string    `db:"title"`
		Slug        string    `db:"slug"`
		Content     string    `db:"content"`
		IsPublished bool      `db:"is_published"`
		CreatedAt   time.Time `db:"created_at"`
	}
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, slug)
	}

	return &domain.Article{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Slug:        row.Slug,
		Content:     row.Content,
		IsPublished: row.IsPublished,
		CreatedAt:   row.CreatedAt,
	}, nil
}
