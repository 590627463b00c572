package domain

import "strings"

// EntityKind identifies an entity family that owns a globally unique slug.
type EntityKind string

const (
	KindCV      EntityKind = "cv"
	KindJob     EntityKind = "job"
	KindCompany EntityKind = "company"
	KindArticle EntityKind = "article"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case KindCV, KindJob, KindCompany, KindArticle:
		return true
	}
	return false
}

// Table returns the table holding records of this kind.
// Returns an empty string for unknown kinds.
func (k EntityKind) Table() string {
	switch k {
	case KindCV:
		return "cvs"
	case KindJob:
		return "jobs"
	case KindCompany:
		return "companies"
	case KindArticle:
		return "articles"
	}
	return ""
}

// EmploymentType is the contract type of a job posting.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
	EmploymentFreelance  EmploymentType = "freelance"
)

func (t EmploymentType) String() string { return string(t) }

func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentInternship, EmploymentTemporary, EmploymentFreelance:
		return true
	}
	return false
}

// ExperienceLevel is the seniority a job posting targets.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceJunior    ExperienceLevel = "junior"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceLead      ExperienceLevel = "lead"
	ExperienceExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) String() string { return string(l) }

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceEntry, ExperienceJunior, ExperienceMid,
		ExperienceSenior, ExperienceLead, ExperienceExecutive:
		return true
	}
	return false
}

// ProficiencyLevel is how well a CV owner speaks a language.
type ProficiencyLevel string

const (
	ProficiencyNative       ProficiencyLevel = "native"
	ProficiencyFluent       ProficiencyLevel = "fluent"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyBasic        ProficiencyLevel = "basic"
)

func (p ProficiencyLevel) String() string { return string(p) }

func (p ProficiencyLevel) IsValid() bool {
	switch p {
	case ProficiencyNative, ProficiencyFluent, ProficiencyAdvanced,
		ProficiencyIntermediate, ProficiencyBasic:
		return true
	}
	return false
}

// ParseProficiency matches s case-insensitively against the known levels.
func ParseProficiency(s string) (ProficiencyLevel, bool) {
	p := ProficiencyLevel(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", false
	}
	return p, true
}
