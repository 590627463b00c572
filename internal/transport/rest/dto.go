package rest

import (
	"time"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

type cvResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Slug         string  `json:"slug"`
	FullName     string  `json:"full_name"`
	Title        string  `json:"title"`
	Summary      *string `json:"summary"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	PhotoPath    *string `json:"photo_path"`
	LinkedInURL  *string `json:"linkedin_url"`
	GitHubURL    *string `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
	WebsiteURL   *string `json:"website_url"`
	IsPublic     bool    `json:"is_public"`
	IsPrimary    bool    `json:"is_primary"`

	Skills         []string                `json:"skills"`
	Hobbies        []string                `json:"hobbies"`
	WorkExperience []domain.WorkExperience `json:"work_experience"`
	Education      []domain.Education      `json:"education"`
	Certifications []domain.Certification  `json:"certifications"`
	Languages      []domain.LanguageSkill  `json:"languages"`
	References     []domain.Reference      `json:"references"`
	Volunteer      []domain.VolunteerEntry `json:"volunteer"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCVResponse(c *domain.CV) cvResponse {
	return cvResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		Slug:           c.Slug,
		FullName:       c.FullName,
		Title:          c.Title,
		Summary:        c.Summary,
		Email:          c.Email,
		Phone:          c.Phone,
		Location:       c.Location,
		PhotoPath:      c.PhotoPath,
		LinkedInURL:    c.LinkedInURL,
		GitHubURL:      c.GitHubURL,
		PortfolioURL:   c.PortfolioURL,
		WebsiteURL:     c.WebsiteURL,
		IsPublic:       c.IsPublic,
		IsPrimary:      c.IsPrimary,
		Skills:         orEmpty(c.Skills),
		Hobbies:        orEmpty(c.Hobbies),
		WorkExperience: orEmpty(c.WorkExperience),
		Education:      orEmpty(c.Education),
		Certifications: orEmpty(c.Certifications),
		Languages:      orEmpty(c.Languages),
		References:     orEmpty(c.References),
		Volunteer:      orEmpty(c.Volunteer),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type jobResponse struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CompanyID       int64     `json:"company_id"`
	CompanyName     string    `json:"company_name,omitempty"`
	CompanySlug     string    `json:"company_slug,omitempty"`
	Location        *string   `json:"location"`
	EmploymentType  string    `json:"employment_type"`
	ExperienceLevel *string   `json:"experience_level"`
	IsRemote        bool      `json:"is_remote"`
	IsFeatured      bool      `json:"is_featured"`
	Category        *string   `json:"category"`
	SalaryMin       *int64    `json:"salary_min"`
	SalaryMax       *int64    `json:"salary_max"`
	ApplicationURL  *string   `json:"application_url"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toJobResponse(j *domain.Job) jobResponse {
	resp := jobResponse{
		ID:             j.ID,
		Slug:           j.Slug,
		Title:          j.Title,
		Description:    j.Description,
		CompanyID:      j.CompanyID,
		CompanyName:    j.CompanyName,
		CompanySlug:    j.CompanySlug,
		Location:       j.Location,
		EmploymentType: j.EmploymentType.String(),
		IsRemote:       j.IsRemote,
		IsFeatured:     j.IsFeatured,
		Category:       j.Category,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		ApplicationURL: j.ApplicationURL,
		Skills:         orEmpty(j.Skills),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if j.ExperienceLevel != nil {
		lvl := j.ExperienceLevel.String()
		resp.ExperienceLevel = &lvl
	}
	return resp
}

type searchResponse struct {
	Data    []jobResponse `json:"data"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

type companyResponse struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	WebsiteURL  *string   `json:"website_url"`
	LogoPath    *string   `json:"logo_path"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		WebsiteURL:  c.WebsiteURL,
		LogoPath:    c.LogoPath,
		CreatedAt:   c.CreatedAt,
	}
}

type articleResponse struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Content:     a.Content,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
