package company

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

type companyRepoMock struct {
	CreateFunc func(ctx context.Context, c *domain.Company) error
	calls      int
}

func (m *companyRepoMock) Create(ctx context.Context, c *domain.Company) error {
	m.calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = 1
	return nil
}

type slugResolverMock struct {
	labels []string
}

func (m *slugResolverMock) Resolve(_ context.Context, kind domain.EntityKind, label string, _ *int64) (string, error) {
	m.labels = append(m.labels, label)
	return string(kind) + "-slug", nil
}

func newTestService(repo *companyRepoMock, slugs *slugResolverMock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, slugs, validation.New())
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     context.Context
		fields  profile.Fields
		wantErr error
	}{
		{"success", ctxutil.WithUserID(context.Background(), 1), profile.Fields{"name": "Acme", "website_url": "https://acme.example"}, nil},
		{"missing name", ctxutil.WithUserID(context.Background(), 1), profile.Fields{"name": " "}, domain.ErrValidation},
		{"bad website", ctxutil.WithUserID(context.Background(), 1), profile.Fields{"name": "Acme", "website_url": "acme"}, domain.ErrValidation},
		{"anonymous", context.Background(), profile.Fields{"name": "Acme"}, domain.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &companyRepoMock{}
			slugs := &slugResolverMock{}
			got, err := newTestService(repo, slugs).Create(tt.ctx, CreateInput{Fields: tt.fields})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "company-slug", got.Slug)
			assert.Equal(t, []string{"Acme"}, slugs.labels)
			assert.Equal(t, "https://acme.example", *got.WebsiteURL)
		})
	}
}

func TestCreate_RepeatedSlugRaceIsConflict(t *testing.T) {
	t.Parallel()

	repo := &companyRepoMock{CreateFunc: func(context.Context, *domain.Company) error {
		return domain.ErrAlreadyExists
	}}
	_, err := newTestService(repo, &slugResolverMock{}).
		Create(ctxutil.WithUserID(context.Background(), 1), CreateInput{Fields: profile.Fields{"name": "Acme"}})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 2, repo.calls)
}
