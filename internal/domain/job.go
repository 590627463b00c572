package domain

import "time"

// Job is a job posting published under a company.
type Job struct {
	ID              int64
	UserID          int64
	CompanyID       int64
	CompanyName     string
	CompanySlug     string
	Slug            string
	Title           string
	Description     string
	Location        *string
	EmploymentType  EmploymentType
	ExperienceLevel *ExperienceLevel
	IsRemote        bool
	IsFeatured      bool
	Category        *string
	SalaryMin       *int64
	SalaryMax       *int64
	ApplicationURL  *string
	Skills          []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Company is an employer profile that owns job postings.
type Company struct {
	ID          int64
	UserID      int64
	Name        string
	Slug        string
	Description *string
	WebsiteURL  *string
	LogoPath    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Article is an editorial post (career advice, announcements).
type Article struct {
	ID          int64
	UserID      int64
	Title       string
	Slug        string
	Content     string
	IsPublished bool
	CreatedAt   time.Time
}
