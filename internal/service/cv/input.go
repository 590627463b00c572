package cv

import (
	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
)

// CreateInput carries a raw CV submission.
type CreateInput struct {
	Fields profile.Fields
}

// UpdateInput carries a raw CV submission for an existing CV. Scalars that
// are not submitted keep their stored value.
type UpdateInput struct {
	ID     int64
	Fields profile.Fields
}

// scalars holds the top-level CV fields checked by the validator.
type scalars struct {
	FullName     string  `json:"full_name" validate:"required,max=255"`
	Title        string  `json:"title" validate:"required,max=255"`
	Summary      *string `json:"summary" validate:"omitempty,max=5000"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	PhotoPath    *string `json:"photo_path" validate:"omitempty,max=500"`
	LinkedInURL  *string `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL    *string `json:"github_url" validate:"omitempty,url"`
	PortfolioURL *string `json:"portfolio_url" validate:"omitempty,url"`
	WebsiteURL   *string `json:"website_url" validate:"omitempty,url"`
}

// scalarsOf returns the stored scalars of c.
func scalarsOf(c *domain.CV) scalars {
	return scalars{
		FullName:     c.FullName,
		Title:        c.Title,
		Summary:      c.Summary,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		PhotoPath:    c.PhotoPath,
		LinkedInURL:  c.LinkedInURL,
		GitHubURL:    c.GitHubURL,
		PortfolioURL: c.PortfolioURL,
		WebsiteURL:   c.WebsiteURL,
	}
}

// merge overlays the submitted scalar fields onto s.
func (s *scalars) merge(f profile.Fields, p domain.NormalizedProfile) {
	if v, ok := f.String("full_name"); ok {
		s.FullName = v
	}
	if v, ok := f.String("title"); ok {
		s.Title = v
	}
	for key, dst := range map[string]**string{
		"summary":    &s.Summary,
		"email":      &s.Email,
		"phone":      &s.Phone,
		"location":   &s.Location,
		"photo_path": &s.PhotoPath,
	} {
		if f.Has(key) {
			*dst = f.OptionalString(key)
		}
	}

	s.LinkedInURL = p.URL("linkedin_url").Apply(s.LinkedInURL)
	s.GitHubURL = p.URL("github_url").Apply(s.GitHubURL)
	s.PortfolioURL = p.URL("portfolio_url").Apply(s.PortfolioURL)
	s.WebsiteURL = p.URL("website_url").Apply(s.WebsiteURL)
}

// apply copies s onto c.
func (s scalars) apply(c *domain.CV) {
	c.FullName = s.FullName
	c.Title = s.Title
	c.Summary = s.Summary
	c.Email = s.Email
	c.Phone = s.Phone
	c.Location = s.Location
	c.PhotoPath = s.PhotoPath
	c.LinkedInURL = s.LinkedInURL
	c.GitHubURL = s.GitHubURL
	c.PortfolioURL = s.PortfolioURL
	c.WebsiteURL = s.WebsiteURL
}
