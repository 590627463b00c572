// Package job implements job posting persistence and search using PostgreSQL.
package job

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/search"
)

const entity = "job"

// selectColumns reads a job joined with its company (jobs j, companies c).
var selectColumns = []string{
	"j.id", "j.user_id", "j.company_id", "c.name AS company_name",
	"c.slug AS company_slug", "j.slug", "j.title", "j.description",
	"j.location", "j.employment_type", "j.experience_level", "j.is_remote",
	"j.is_featured", "j.category", "j.salary_min", "j.salary_max",
	"j.application_url", "j.skills", "j.created_at", "j.updated_at",
}

// Repo provides job persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new job repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts j and fills its ID and timestamps. A slug collision is
// reported as domain.ErrAlreadyExists; an unknown company as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, j *domain.Job) error {
	skills, err := postgres.JSONB(j.Skills)
	if err != nil {
		return fmt.Errorf("%s skills: %w", entity, err)
	}

	query, args, err := postgres.Builder.
		Insert("jobs").
		Columns(
			"user_id", "company_id", "slug", "title", "description", "location",
			"employment_type", "experience_level", "is_remote", "is_featured",
			"category", "salary_min", "salary_max", "application_url", "skills",
		).
		Values(
			j.UserID, j.CompanyID, j.Slug, j.Title, j.Description, j.Location,
			string(j.EmploymentType), experienceLevel(j.ExperienceLevel), j.IsRemote, j.IsFeatured,
			j.Category, j.SalaryMin, j.SalaryMax, j.ApplicationURL, skills,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build insert: %w", entity, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, entity, j.Slug)
	}
	return nil
}

// Update writes every mutable field of j. The slug and owner are not changed.
func (r *Repo) Update(ctx context.Context, j *domain.Job) error {
	skills, err := postgres.JSONB(j.Skills)
	if err != nil {
		return fmt.Errorf("%s %d skills: %w", entity, j.ID, err)
	}

	query, args, err := postgres.Builder.
		Update("jobs").
		Set("company_id", j.CompanyID).
		Set("title", j.Title).
		Set("description", j.Description).
		Set("location", j.Location).
		Set("employment_type", string(j.EmploymentType)).
		Set("experience_level", experienceLevel(j.ExperienceLevel)).
		Set("is_remote", j.IsRemote).
		Set("is_featured", j.IsFeatured).
		Set("category", j.Category).
		Set("salary_min", j.SalaryMin).
		Set("salary_max", j.SalaryMax).
		Set("application_url", j.ApplicationURL).
		Set("skills", skills).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": j.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build update: %w", entity, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&j.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, entity, j.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the job with the given ID and its company name and slug.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return r.get(ctx, sq.Eq{"j.id": id}, id)
}

// GetBySlug returns the job with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	return r.get(ctx, sq.Eq{"j.slug": slug}, slug)
}

func (r *Repo) get(ctx context.Context, where sq.Eq, key any) (*domain.Job, error) {
	query, args, err := selectJobs().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", entity, err)
	}

	var row jobRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return row.toDomain()
}

// Search returns one page of jobs matching q, newest featured first, and
// the total number of matches.
func (r *Repo) Search(ctx context.Context, q search.Query) ([]domain.Job, int, error) {
	where := q.Where()
	db := postgres.QuerierFromCtx(ctx, r.db)

	countQuery, countArgs, err := postgres.Builder.
		Select("COUNT(*)").
		From("jobs j").
		Join("companies c ON c.id = j.company_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: build count: %w", entity, err)
	}

	var total int
	if err := db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity+" search count", nil)
	}
	if total == 0 {
		return []domain.Job{}, 0, nil
	}

	listQuery, listArgs, err := selectJobs().
		Where(where).
		OrderBy("j.is_featured DESC", "j.created_at DESC", "j.id DESC").
		Limit(q.Limit()).
		Offset(q.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: build search: %w", entity, err)
	}

	var rows []jobRow
	if err := pgxscan.Select(ctx, db, &rows, listQuery, listArgs...); err != nil {
		return nil, 0, postgres.MapError(err, entity+" search", nil)
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, row := range rows {
		j, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, total, nil
}

func selectJobs() sq.SelectBuilder {
	return postgres.Builder.
		Select(selectColumns...).
		From("jobs j").
		Join("companies c ON c.id = j.company_id")
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type jobRow struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	CompanyID       int64     `db:"company_id"`
	CompanyName     string    `db:"company_name"`
	CompanySlug     string    `db:"company_slug"`
	Slug            string    `db:"slug"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Location        *string   `db:"location"`
	EmploymentType  string    `db:"employment_type"`
	ExperienceLevel *string   `db:"experience_level"`
	IsRemote        bool      `db:"is_remote"`
	IsFeatured      bool      `db:"is_featured"`
	Category        *string   `db:"category"`
	SalaryMin       *int64    `db:"salary_min"`
	SalaryMax       *int64    `db:"salary_max"`
	ApplicationURL  *string   `db:"application_url"`
	Skills          []byte    `db:"skills"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (row jobRow) toDomain() (*domain.Job, error) {
	j := &domain.Job{
		ID:             row.ID,
		UserID:         row.UserID,
		CompanyID:      row.CompanyID,
		CompanyName:    row.CompanyName,
		CompanySlug:    row.CompanySlug,
		Slug:           row.Slug,
		Title:          row.Title,
		Description:    row.Description,
		Location:       row.Location,
		EmploymentType: domain.EmploymentType(row.EmploymentType),
		IsRemote:       row.IsRemote,
		IsFeatured:     row.IsFeatured,
		Category:       row.Category,
		SalaryMin:      row.SalaryMin,
		SalaryMax:      row.SalaryMax,
		ApplicationURL: row.ApplicationURL,
		Skills:         []string{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.ExperienceLevel != nil {
		lvl := domain.ExperienceLevel(*row.ExperienceLevel)
		j.ExperienceLevel = &lvl
	}
	if err := postgres.DecodeJSONB(row.Skills, &j.Skills); err != nil {
		return nil, fmt.Errorf("%s %d skills: %w", entity, row.ID, err)
	}
	return j, nil
}

func experienceLevel(l *domain.ExperienceLevel) *string {
	if l == nil {
		return nil
	}
	s := string(*l)
	return &s
}
