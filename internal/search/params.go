// Package search turns raw job search query parameters into ordered,
// AND-combined SQL predicates and a summary for the search audit log.
package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

// Params holds the recognized search parameters. nil means "not supplied";
// empty and unparseable values are normalized to nil.
type Params struct {
	Search          *string
	Location        *string
	EmploymentType  *string
	ExperienceLevel *string
	IsRemote        *bool
	Category        *string
	SalaryMin       *int64
	Company         *string

	// Page and PerPage are zero when absent or invalid; Compose applies defaults.
	Page    int
	PerPage int
}

// ParseParams extracts Params from a query string.
func ParseParams(q url.Values) Params {
	p := Params{
		Search:          text(q, "search"),
		Location:        text(q, "location"),
		EmploymentType:  text(q, "employment_type"),
		ExperienceLevel: text(q, "experience_level"),
		Category:        text(q, "category"),
		Company:         text(q, "company"),
	}

	if s := text(q, "is_remote"); s != nil {
		if b, ok := domain.ParseBoolToken(*s); ok {
			p.IsRemote = &b
		}
	}
	if s := text(q, "salary_min"); s != nil {
		if n, err := strconv.ParseInt(*s, 10, 64); err == nil {
			p.SalaryMin = &n
		}
	}
	if s := text(q, "page"); s != nil {
		p.Page, _ = strconv.Atoi(*s)
	}
	if s := text(q, "per_page"); s != nil {
		p.PerPage, _ = strconv.Atoi(*s)
	}

	return p
}

func text(q url.Values, key string) *string {
	return domain.TrimOrNil(q.Get(key))
}

// likePattern wraps s for a substring ILIKE match, escaping wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
