package article

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
	"github.com/heartmarshall/jobboard-backend/internal/validation"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

type articleRepoMock struct {
	created []domain.Article
}

func (m *articleRepoMock) Create(_ context.Context, a *domain.Article) error {
	a.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *a)
	return nil
}

type slugResolverMock struct{}

func (slugResolverMock) Resolve(_ context.Context, _ domain.EntityKind, label string, _ *int64) (string, error) {
	if label == "" {
		return "article", nil
	}
	return "interview-tips", nil
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	repo := &articleRepoMock{}
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, slugResolverMock{}, validation.New())

	got, err := svc.Create(ctxutil.WithUserID(context.Background(), 2), CreateInput{Fields: profile.Fields{
		"title":        "Interview tips",
		"content":      "Arrive early.",
		"is_published": "1",
	}})
	require.NoError(t, err)

	assert.Equal(t, "interview-tips", got.Slug)
	assert.True(t, got.IsPublished)
	assert.Equal(t, int64(2), got.UserID)
	assert.Len(t, repo.created, 1)
}

func TestCreate_Invalid(t *testing.T) {
	t.Parallel()

	repo := &articleRepoMock{}
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, slugResolverMock{}, validation.New())

	_, err := svc.Create(ctxutil.WithUserID(context.Background(), 2), CreateInput{Fields: profile.Fields{"title": "x"}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), CreateInput{Fields: profile.Fields{"title": "x", "content": "y"}})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Empty(t, repo.created)
}
