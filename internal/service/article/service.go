// Package article implements editorial article creation.
package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/internal/slug"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

type articleRepo interface {
	Create(ctx context.Context, a *domain.Article) error
}

type slugResolver interface {
	Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error)
}

type structValidator interface {
	Struct(s any) error
}

// Service provides article operations.
type Service struct {
	articles articleRepo
	slugs    slugResolver
	validate structValidator
	log      *slog.Logger
}

// NewService creates a new article service.
func NewService(log *slog.Logger, articles articleRepo, slugs slugResolver, validate structValidator) *Service {
	return &Service{
		articles: articles,
		slugs:    slugs,
		validate: validate,
		log:      log.With("service", "article"),
	}
}

// CreateInput carries a raw article submission.
type CreateInput struct {
	Fields profile.Fields
}

type createFields struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Create stores an article written by the caller; the slug is derived from
// the title.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	title, _ := input.Fields.String("title")
	content, _ := input.Fields.String("content")
	in := createFields{Title: title, Content: content}
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	a := &domain.Article{UserID: userID, Title: in.Title, Content: in.Content}
	a.IsPublished, _ = input.Fields.Bool("is_published")

	_, err := slug.CreateWithRetry(ctx,
		func(ctx context.Context) (string, error) {
			return s.slugs.Resolve(ctx, domain.KindArticle, a.Title, nil)
		},
		func(ctx context.Context, sl string) error {
			a.Slug = sl
			return s.articles.Create(ctx, a)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.InfoContext(ctx, "article created", slog.Int64("article_id", a.ID), slog.String("slug", a.Slug))
	return a, nil
}
