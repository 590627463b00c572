// Package cv implements CV persistence using PostgreSQL. Structured profile
// sections are stored as jsonb columns and written with replace semantics.
package cv

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

const entity = "cv"

var columns = []string{
	"id", "user_id", "slug", "full_name", "title", "summary", "email", "phone",
	"location", "photo_path", "linkedin_url", "github_url", "portfolio_url",
	"website_url", "is_public", "is_primary", "skills", "hobbies",
	"work_experience", "education", "certifications", "languages",
	"professional_references", "volunteer", "created_at", "updated_at",
}

// sectionColumns maps profile sections to their jsonb columns.
var sectionColumns = map[domain.Section]string{
	domain.SectionSkills:         "skills",
	domain.SectionHobbies:        "hobbies",
	domain.SectionWorkExperience: "work_experience",
	domain.SectionEducation:      "education",
	domain.SectionCertifications: "certifications",
	domain.SectionLanguages:      "languages",
	domain.SectionReferences:     "professional_references",
	domain.SectionVolunteer:      "volunteer",
}

// Repo provides CV persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new CV repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c and fills its ID and timestamps. A slug collision is
// reported as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.CV) error {
	sections := make([]any, 0, len(domain.AllSections))
	for _, s := range domain.AllSections {
		v, err := postgres.JSONB(c.SectionValue(s))
		if err != nil {
			return fmt.Errorf("%s %s: %w", entity, s, err)
		}
		sections = append(sections, v)
	}

	values := append([]any{
		c.UserID, c.Slug, c.FullName, c.Title, c.Summary, c.Email, c.Phone,
		c.Location, c.PhotoPath, c.LinkedInURL, c.GitHubURL, c.PortfolioURL,
		c.WebsiteURL, c.IsPublic, c.IsPrimary,
	}, sections...)

	query, args, err := postgres.Builder.
		Insert("cvs").
		Columns(columns[1:24]...).
		Values(values...).
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

// UpdateScalars writes every non-section field of c except the slug and owner.
func (r *Repo) UpdateScalars(ctx context.Context, c *domain.CV) error {
	query, args, err := postgres.Builder.
		Update("cvs").
		Set("full_name", c.FullName).
		Set("title", c.Title).
		Set("summary", c.Summary).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("location", c.Location).
		Set("photo_path", c.PhotoPath).
		Set("linkedin_url", c.LinkedInURL).
		Set("github_url", c.GitHubURL).
		Set("portfolio_url", c.PortfolioURL).
		Set("website_url", c.WebsiteURL).
		Set("is_public", c.IsPublic).
		Set("is_primary", c.IsPrimary).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build update: %w", entity, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, entity, c.ID)
	}
	return nil
}

// ReplaceSections overwrites the jsonb column of every submitted section of
// p. Sections that were not submitted are left untouched; a submitted empty
// section is stored as an empty list.
func (r *Repo) ReplaceSections(ctx context.Context, id int64, p domain.NormalizedProfile) error {
	submitted := p.SubmittedSections()
	if len(submitted) == 0 {
		return nil
	}

	b := postgres.Builder.Update("cvs")
	for _, s := range submitted {
		v, err := postgres.JSONB(p.SectionValue(s))
		if err != nil {
			return fmt.Errorf("%s %d %s: %w", entity, id, s, err)
		}
		b = b.Set(sectionColumns[s], v)
	}

	query, args, err := b.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build replace: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ClearPrimary unsets the primary marker on every other CV of the user.
func (r *Repo) ClearPrimary(ctx context.Context, userID, exceptID int64) error {
	query, args, err := postgres.Builder.
		Update("cvs").
		Set("is_primary", false).
		Where(sq.Eq{"user_id": userID, "is_primary": true}).
		Where(sq.NotEq{"id": exceptID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build clear primary: %w", entity, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, exceptID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the CV with the given ID.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetBySlug returns the CV with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.CV, error) {
	return r.get(ctx, sq.Eq{"slug": slug}, slug)
}

func (r *Repo) get(ctx context.Context, where sq.Eq, key any) (*domain.CV, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("cvs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", entity, err)
	}

	var row cvRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type cvRow struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	Slug           string    `db:"slug"`
	FullName       string    `db:"full_name"`
	Title          string    `db:"title"`
	Summary        *string   `db:"summary"`
	Email          *string   `db:"email"`
	Phone          *string   `db:"phone"`
	Location       *string   `db:"location"`
	PhotoPath      *string   `db:"photo_path"`
	LinkedInURL    *string   `db:"linkedin_url"`
	GitHubURL      *string   `db:"github_url"`
	PortfolioURL   *string   `db:"portfolio_url"`
	WebsiteURL     *string   `db:"website_url"`
	IsPublic       bool      `db:"is_public"`
	IsPrimary      bool      `db:"is_primary"`
	Skills         []byte    `db:"skills"`
	Hobbies        []byte    `db:"hobbies"`
	WorkExperience []byte    `db:"work_experience"`
	Education      []byte    `db:"education"`
	Certifications []byte    `db:"certifications"`
	Languages      []byte    `db:"languages"`
	References     []byte    `db:"professional_references"`
	Volunteer      []byte    `db:"volunteer"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row cvRow) toDomain() (*domain.CV, error) {
	c := &domain.CV{
		ID:             row.ID,
		UserID:         row.UserID,
		Slug:           row.Slug,
		FullName:       row.FullName,
		Title:          row.Title,
		Summary:        row.Summary,
		Email:          row.Email,
		Phone:          row.Phone,
		Location:       row.Location,
		PhotoPath:      row.PhotoPath,
		LinkedInURL:    row.LinkedInURL,
		GitHubURL:      row.GitHubURL,
		PortfolioURL:   row.PortfolioURL,
		WebsiteURL:     row.WebsiteURL,
		IsPublic:       row.IsPublic,
		IsPrimary:      row.IsPrimary,
		Skills:         []string{},
		Hobbies:        []string{},
		WorkExperience: []domain.WorkExperience{},
		Education:      []domain.Education{},
		Certifications: []domain.Certification{},
		Languages:      []domain.LanguageSkill{},
		References:     []domain.Reference{},
		Volunteer:      []domain.VolunteerEntry{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	decode := []struct {
		col  string
		data []byte
		dst  any
	}{
		{"skills", row.Skills, &c.Skills},
		{"hobbies", row.Hobbies, &c.Hobbies},
		{"work_experience", row.WorkExperience, &c.WorkExperience},
		{"education", row.Education, &c.Education},
		{"certifications", row.Certifications, &c.Certifications},
		{"languages", row.Languages, &c.Languages},
		{"professional_references", row.References, &c.References},
		{"volunteer", row.Volunteer, &c.Volunteer},
	}
	for _, d := range decode {
		if err := postgres.DecodeJSONB(d.data, d.dst); err != nil {
			return nil, fmt.Errorf("%s %d %s: %w", entity, row.ID, d.col, err)
		}
	}
	return c, nil
}
