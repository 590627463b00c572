package domain

// Section names a multi-value field of a profile submission. The value is
// also the submitted field name.
type Section string

const (
	SectionSkills         Section = "skills"
	SectionHobbies        Section = "hobbies"
	SectionWorkExperience Section = "work_experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionReferences     Section = "references"
	SectionVolunteer      Section = "volunteer"
)

// AllSections lists every known section in a stable order.
var AllSections = []Section{
	SectionSkills,
	SectionHobbies,
	SectionWorkExperience,
	SectionEducation,
	SectionCertifications,
	SectionLanguages,
	SectionReferences,
	SectionVolunteer,
}

// WorkExperience is one entry of a CV's work history.
type WorkExperience struct {
	Position    string  `json:"position"`
	Company     string  `json:"company"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// Education is one entry of a CV's education history.
type Education struct {
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"field_of_study"`
	Institution  string  `json:"institution"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Grade        *string `json:"grade"`
	Description  *string `json:"description"`
}

// Certification is a professional certificate listed on a CV.
type Certification struct {
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	Date          string  `json:"date"`
	ExpiryDate    *string `json:"expiry_date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
}

// LanguageSkill is a spoken language with its proficiency.
type LanguageSkill struct {
	Language    string           `json:"language"`
	Proficiency ProficiencyLevel `json:"proficiency"`
}

// Reference is a professional referee.
type Reference struct {
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Company      string  `json:"company"`
	Relationship string  `json:"relationship"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
}

// VolunteerEntry is one volunteering engagement.
type VolunteerEntry struct {
	Organization string  `json:"organization"`
	Role         string  `json:"role"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Description  *string `json:"description"`
}

// URLState tells apart a URL field that was not submitted from one that was
// explicitly cleared with an empty value.
type URLState int

const (
	URLUnspecified URLState = iota
	URLCleared
	URLSet
)

// OptionalURL is a normalized URL-type scalar field.
type OptionalURL struct {
	State URLState
	Value string
}

// Apply returns the value to store given the currently stored one:
// unspecified keeps current, cleared stores NULL, set stores the new value.
func (u OptionalURL) Apply(current *string) *string {
	switch u.State {
	case URLCleared:
		return nil
	case URLSet:
		v := u.Value
		return &v
	default:
		return current
	}
}

// NormalizedProfile is the canonical shape of a profile submission.
// Every list is non-nil; Submitted records which sections were present in
// the submission so the storage layer can replace exactly those.
type NormalizedProfile struct {
	Skills         []string
	Hobbies        []string
	WorkExperience []WorkExperience
	Education      []Education
	Certifications []Certification
	Languages      []LanguageSkill
	References     []Reference
	Volunteer      []VolunteerEntry

	Flags     map[string]bool
	URLs      map[string]OptionalURL
	Submitted map[Section]bool
}

// SectionValue returns the normalized list for a section.
func (p NormalizedProfile) SectionValue(s Section) any {
	switch s {
	case SectionSkills:
		return p.Skills
	case SectionHobbies:
		return p.Hobbies
	case SectionWorkExperience:
		return p.WorkExperience
	case SectionEducation:
		return p.Education
	case SectionCertifications:
		return p.Certifications
	case SectionLanguages:
		return p.Languages
	case SectionReferences:
		return p.References
	case SectionVolunteer:
		return p.Volunteer
	}
	return nil
}

// SubmittedSections returns the submitted sections in AllSections order.
func (p NormalizedProfile) SubmittedSections() []Section {
	out := make([]Section, 0, len(p.Submitted))
	for _, s := range AllSections {
		if p.Submitted[s] {
			out = append(out, s)
		}
	}
	return out
}

// Flag returns the coerced boolean and whether it was submitted.
func (p NormalizedProfile) Flag(name string) (bool, bool) {
	v, ok := p.Flags[name]
	return v, ok
}

// URL returns the normalized URL field; missing entries are unspecified.
func (p NormalizedProfile) URL(name string) OptionalURL {
	return p.URLs[name]
}
