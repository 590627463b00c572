package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user row and returns its ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	suffix := uniqueSuffix()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id`,
		"user-"+suffix+"@example.com", "Test User "+suffix,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedCompany inserts a company owned by userID with a unique slug.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, userID int64, name string) domain.Company {
	t.Helper()

	c := domain.Company{
		UserID: userID,
		Name:   name,
		Slug:   "company-" + uniqueSuffix(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO companies (user_id, name, slug) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.Slug,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}

// UniqueSlug returns a slug that no other test will generate.
func UniqueSlug(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}
