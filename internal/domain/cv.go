package domain

import "time"

// CV is a candidate profile owned by a user.
type CV struct {
	ID        int64
	UserID    int64
	Slug      string
	FullName  string
	Title     string
	Summary   *string
	Email     *string
	Phone     *string
	Location  *string
	PhotoPath *string

	LinkedInURL  *string
	GitHubURL    *string
	PortfolioURL *string
	WebsiteURL   *string

	IsPublic  bool
	IsPrimary bool

	Skills         []string
	Hobbies        []string
	WorkExperience []WorkExperience
	Education      []Education
	Certifications []Certification
	Languages      []LanguageSkill
	References     []Reference
	Volunteer      []VolunteerEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplySections copies the submitted sections of p onto the CV.
func (c *CV) ApplySections(p NormalizedProfile) {
	for _, s := range p.SubmittedSections() {
		switch s {
		case SectionSkills:
			c.Skills = p.Skills
		case SectionHobbies:
			c.Hobbies = p.Hobbies
		case SectionWorkExperience:
			c.WorkExperience = p.WorkExperience
		case SectionEducation:
			c.Education = p.Education
		case SectionCertifications:
			c.Certifications = p.Certifications
		case SectionLanguages:
			c.Languages = p.Languages
		case SectionReferences:
			c.References = p.References
		case SectionVolunteer:
			c.Volunteer = p.Volunteer
		}
	}
}

// SectionValue returns the stored list for a section.
func (c *CV) SectionValue(s Section) any {
	switch s {
	case SectionSkills:
		return c.Skills
	case SectionHobbies:
		return c.Hobbies
	case SectionWorkExperience:
		return c.WorkExperience
	case SectionEducation:
		return c.Education
	case SectionCertifications:
		return c.Certifications
	case SectionLanguages:
		return c.Languages
	case SectionReferences:
		return c.References
	case SectionVolunteer:
		return c.Volunteer
	}
	return nil
}
