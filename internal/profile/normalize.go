// Package profile normalizes loosely typed profile submissions into
// domain.NormalizedProfile.
package profile

import (
	"strings"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

// Normalize converts a raw field bag into its canonical shape. It never
// fails: malformed optional content degrades to empty lists, false flags or
// dropped entries. Steps run in a fixed order:
//
//  1. multi-value fields are coerced to lists (JSON strings parsed)
//  2. boolean flags are coerced
//  3. skills and hobbies are flattened to strings
//  4. structured sections are filtered to complete entries
//  5. URL fields are classified as unspecified, cleared or set
func Normalize(raw Fields, schema Schema) domain.NormalizedProfile {
	p := domain.NormalizedProfile{
		Skills:         []string{},
		Hobbies:        []string{},
		WorkExperience: []domain.WorkExperience{},
		Education:      []domain.Education{},
		Certifications: []domain.Certification{},
		Languages:      []domain.LanguageSkill{},
		References:     []domain.Reference{},
		Volunteer:      []domain.VolunteerEntry{},
		Flags:          make(map[string]bool, len(schema.BoolFields)),
		URLs:           make(map[string]domain.OptionalURL, len(schema.URLFields)),
		Submitted:      make(map[domain.Section]bool),
	}

	lists := make(map[domain.Section][]item, len(schema.Sections))
	for _, sec := range schema.Sections {
		v, ok := raw[string(sec)]
		if !ok {
			continue
		}
		lists[sec] = coerceList(v)
		p.Submitted[sec] = true
	}

	for _, name := range schema.BoolFields {
		if v, ok := raw[name]; ok {
			p.Flags[name] = coerceBool(v)
		}
	}

	for sec, items := range lists {
		switch sec {
		case domain.SectionSkills:
			p.Skills = flatten(items)
		case domain.SectionHobbies:
			p.Hobbies = flatten(items)
		}
	}

	for sec, items := range lists {
		switch sec {
		case domain.SectionWorkExperience:
			p.WorkExperience = records(items, workExperience)
		case domain.SectionEducation:
			p.Education = records(items, education)
		case domain.SectionCertifications:
			p.Certifications = records(items, certification)
		case domain.SectionLanguages:
			p.Languages = records(items, language)
		case domain.SectionReferences:
			p.References = records(items, reference)
		case domain.SectionVolunteer:
			p.Volunteer = records(items, volunteer)
		}
	}

	for _, name := range schema.URLFields {
		if v, ok := raw[name]; ok {
			p.URLs[name] = classifyURL(v)
		}
	}

	return p
}

func classifyURL(v any) domain.OptionalURL {
	s, ok := scalarString(v)
	if !ok {
		return domain.OptionalURL{State: domain.URLCleared}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.OptionalURL{State: domain.URLCleared}
	}
	return domain.OptionalURL{State: domain.URLSet, Value: s}
}
