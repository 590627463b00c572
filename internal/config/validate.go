package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Slug.validate(); err != nil {
		return fmt.Errorf("slug: %w", err)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.Audit.Workers <= 0 {
		return fmt.Errorf("audit.workers must be > 0 (got %d)", c.Audit.Workers)
	}
	if c.Audit.Timeout <= 0 {
		return fmt.Errorf("audit.timeout must be > 0 (got %v)", c.Audit.Timeout)
	}

	return nil
}

func (s *SlugConfig) validate() error {
	if s.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be >= 1 (got %d)", s.MaxCandidates)
	}
	// Room for the root, a hyphen and the 8-char fallback suffix.
	if s.MaxLength < 16 {
		return fmt.Errorf("max_length must be >= 16 (got %d)", s.MaxLength)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.DefaultPerPage <= 0 {
		return fmt.Errorf("default_per_page must be > 0 (got %d)", s.DefaultPerPage)
	}
	if s.MaxPerPage < s.DefaultPerPage {
		return fmt.Errorf("max_per_page must be >= default_per_page (got %d < %d)", s.MaxPerPage, s.DefaultPerPage)
	}
	if s.RatePerMinute <= 0 {
		return fmt.Errorf("rate_per_minute must be > 0 (got %d)", s.RatePerMinute)
	}
	return nil
}
