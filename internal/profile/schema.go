package profile

import "github.com/heartmarshall/jobboard-backend/internal/domain"

// Schema tells Normalize which submitted keys carry list sections, boolean
// flags and optional URLs for one entity kind.
type Schema struct {
	Kind       domain.EntityKind
	Sections   []domain.Section
	BoolFields []string
	URLFields  []string
}

// CVSchema describes CV submissions.
var CVSchema = Schema{
	Kind:       domain.KindCV,
	Sections:   domain.AllSections,
	BoolFields: []string{"is_public", "is_primary"},
	URLFields:  []string{"linkedin_url", "github_url", "portfolio_url", "website_url"},
}

// JobSchema describes job posting submissions.
var JobSchema = Schema{
	Kind:       domain.KindJob,
	Sections:   []domain.Section{domain.SectionSkills},
	BoolFields: []string{"is_remote", "is_featured"},
	URLFields:  []string{"application_url"},
}

// CompanySchema describes company submissions.
var CompanySchema = Schema{
	Kind:      domain.KindCompany,
	URLFields: []string{"website_url"},
}
