package search

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100

	// MaxPage bounds the page number so the offset stays within a bigint.
	MaxPage = 10000
)

// Predicate is one independent filter condition.
type Predicate struct {
	Name string
	Cond sq.Sqlizer
}

// Query is the composed search: predicates in a fixed order plus paging.
// Column references assume jobs aliased as j joined with companies as c.
type Query struct {
	Predicates []Predicate
	Page       int
	PerPage    int
}

// Where AND-combines all predicates.
func (q Query) Where() sq.And {
	and := make(sq.And, 0, len(q.Predicates))
	for _, p := range q.Predicates {
		and = append(and, p.Cond)
	}
	return and
}

// Names lists predicate names in application order.
func (q Query) Names() []string {
	out := make([]string, len(q.Predicates))
	for i, p := range q.Predicates {
		out[i] = p.Name
	}
	return out
}

func (q Query) Limit() uint64  { return uint64(q.PerPage) }
func (q Query) Offset() uint64 { return uint64((q.Page - 1) * q.PerPage) }

// Summary is the compact description of a search kept in the audit log.
// Filters is nil when only query and location were supplied.
type Summary struct {
	Query    *string
	Location *string
	Filters  map[string]any
}

// Compositor builds Queries with configured paging bounds.
type Compositor struct {
	defaultPerPage int
	maxPerPage     int
}

// NewCompositor creates a Compositor. Non-positive values fall back to defaults.
func NewCompositor(defaultPerPage, maxPerPage int) *Compositor {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	if maxPerPage <= 0 {
		maxPerPage = MaxPerPage
	}
	if defaultPerPage > maxPerPage {
		defaultPerPage = maxPerPage
	}
	return &Compositor{defaultPerPage: defaultPerPage, maxPerPage: maxPerPage}
}

// Compose turns params into a Query. The Summary is returned only when a
// free-text search or a location was supplied; otherwise it is nil and the
// search must not be audited.
func (c *Compositor) Compose(p Params) (Query, *Summary) {
	q := Query{Page: p.Page, PerPage: p.PerPage}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	switch {
	case q.PerPage == 0:
		q.PerPage = c.defaultPerPage
	case q.PerPage < 1:
		q.PerPage = 1
	case q.PerPage > c.maxPerPage:
		q.PerPage = c.maxPerPage
	}

	filters := map[string]any{}
	add := func(name string, cond sq.Sqlizer) {
		q.Predicates = append(q.Predicates, Predicate{Name: name, Cond: cond})
	}

	if p.Search != nil {
		pattern := likePattern(*p.Search)
		add("search", sq.Or{
			sq.ILike{"j.title": pattern},
			sq.ILike{"j.description": pattern},
			sq.ILike{"c.name": pattern},
		})
	}
	if p.Location != nil {
		add("location", sq.ILike{"j.location": likePattern(*p.Location)})
	}
	if p.EmploymentType != nil {
		add("employment_type", sq.Eq{"j.employment_type": *p.EmploymentType})
		filters["employment_type"] = *p.EmploymentType
	}
	if p.ExperienceLevel != nil {
		add("experience_level", sq.Eq{"j.experience_level": *p.ExperienceLevel})
		filters["experience_level"] = *p.ExperienceLevel
	}
	if p.IsRemote != nil {
		add("is_remote", sq.Eq{"j.is_remote": *p.IsRemote})
		filters["is_remote"] = *p.IsRemote
	}
	if p.Category != nil {
		add("category", sq.Eq{"j.category": *p.Category})
		filters["category"] = *p.Category
	}
	if p.SalaryMin != nil {
		// Overlap check: the posting's upper bound must reach the requested minimum.
		add("salary_min", sq.GtOrEq{"j.salary_max": *p.SalaryMin})
		filters["salary_min"] = *p.SalaryMin
	}
	if p.Company != nil {
		if id, err := strconv.ParseInt(*p.Company, 10, 64); err == nil {
			add("company", sq.Eq{"c.id": id})
		} else {
			add("company", sq.Eq{"c.slug": *p.Company})
		}
		filters["company"] = *p.Company
	}

	if p.Search == nil && p.Location == nil {
		return q, nil
	}

	s := &Summary{Query: p.Search, Location: p.Location}
	if len(filters) > 0 {
		s.Filters = filters
	}
	return q, s
}
