package slugstore_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/slugstore"
	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/slug"
)

func TestRepo_ExistingSlugs_SingleQuery(t *testing.T) {
	t.Parallel()

	mock := testhelper.NewMockPool(t)
	repo := slugstore.New(mock)
	exclude := int64(9)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT slug FROM jobs WHERE slug IN ($1,$2,$3) AND id <> $4`)).
		WithArgs("go-dev", "go-dev-1", "go-dev-2", int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"slug"}).AddRow("go-dev").AddRow("go-dev-2"))

	got, err := repo.ExistingSlugs(context.Background(), domain.KindJob,
		[]string{"go-dev", "go-dev-1", "go-dev-2"}, &exclude)
	if err != nil {
		t.Fatalf("ExistingSlugs: %v", err)
	}
	if len(got) != 2 || got[0] != "go-dev" || got[1] != "go-dev-2" {
		t.Fatalf("unexpected slugs: %v", got)
	}
}

func TestRepo_ExistingSlugs_TablePerKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []domain.EntityKind{domain.KindCV, domain.KindCompany, domain.KindArticle} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			mock := testhelper.NewMockPool(t)
			repo := slugstore.New(mock)

			mock.ExpectQuery(regexp.QuoteMeta(fmt.Sprintf(`SELECT slug FROM %s WHERE slug IN ($1)`, kind.Table()))).
				WithArgs("x").
				WillReturnRows(pgxmock.NewRows([]string{"slug"}))

			got, err := repo.ExistingSlugs(context.Background(), kind, []string{"x"}, nil)
			if err != nil {
				t.Fatalf("ExistingSlugs: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected no slugs, got %v", got)
			}
		})
	}
}

func TestRepo_ExistingSlugs_Errors(t *testing.T) {
	t.Parallel()

	mock := testhelper.NewMockPool(t)
	repo := slugstore.New(mock)

	if _, err := repo.ExistingSlugs(context.Background(), domain.EntityKind("invoice"), []string{"x"}, nil); err == nil {
		t.Fatal("expected error for unknown kind")
	}

	got, err := repo.ExistingSlugs(context.Background(), domain.KindCV, nil, nil)
	if err != nil || got != nil {
		t.Fatalf("empty candidates: got %v, %v", got, err)
	}

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(`SELECT slug FROM cvs`).WithArgs("x").WillReturnError(dbErr)
	if _, err := repo.ExistingSlugs(context.Background(), domain.KindCV, []string{"x"}, nil); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRepo_ResolverIntegration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	userID := testhelper.SeedUser(t, pool)

	root := testhelper.UniqueSlug("burst")
	existing := slug.Candidates(root, slug.DefaultMaxCandidates)
	for _, s := range existing {
		if _, err := pool.Exec(ctx,
			`INSERT INTO articles (user_id, title, slug, content) VALUES ($1, $2, $3, $4)`,
			userID, "Burst", s, "body",
		); err != nil {
			t.Fatalf("seed article %s: %v", s, err)
		}
	}

	resolver := slug.NewResolver(slugstore.New(pool), slug.DefaultMaxCandidates, slug.DefaultMaxLength)
	got, err := resolver.Resolve(ctx, domain.KindArticle, root, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, s := range existing {
		if got == s {
			t.Fatalf("resolved slug %q collides with an existing one", got)
		}
	}
	if !strings.HasPrefix(got, root+"-") {
		t.Fatalf("expected fallback with root prefix, got %q", got)
	}

	// The article's own row is ignored on update.
	var id int64
	if err := pool.QueryRow(ctx, `SELECT id FROM articles WHERE slug = $1`, root).Scan(&id); err != nil {
		t.Fatalf("lookup article: %v", err)
	}
	got, err = resolver.Resolve(ctx, domain.KindArticle, root, &id)
	if err != nil {
		t.Fatalf("Resolve with exclude: %v", err)
	}
	if got != root {
		t.Fatalf("expected own slug %q to be reusable, got %q", root, got)
	}
}
