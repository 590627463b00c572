package profile

import "github.com/heartmarshall/jobboard-backend/internal/domain"

func workExperience(obj map[string]any) (domain.WorkExperience, bool) {
	v, ok := required(obj, "position", "company", "start_date")
	if !ok {
		return domain.WorkExperience{}, false
	}
	return domain.WorkExperience{
		Position:    v[0],
		Company:     v[1],
		StartDate:   v[2],
		EndDate:     optional(obj, "end_date"),
		IsCurrent:   coerceBool(obj["is_current"]),
		Location:    optional(obj, "location"),
		Description: optional(obj, "description"),
	}, true
}

func education(obj map[string]any) (domain.Education, bool) {
	v, ok := required(obj, "degree", "field_of_study", "institution", "start_date")
	if !ok {
		return domain.Education{}, false
	}
	return domain.Education{
		Degree:       v[0],
		FieldOfStudy: v[1],
		Institution:  v[2],
		StartDate:    v[3],
		EndDate:      optional(obj, "end_date"),
		Grade:        optional(obj, "grade"),
		Description:  optional(obj, "description"),
	}, true
}

func certification(obj map[string]any) (domain.Certification, bool) {
	v, ok := required(obj, "name", "issuer", "date")
	if !ok {
		return domain.Certification{}, false
	}
	return domain.Certification{
		Name:          v[0],
		Issuer:        v[1],
		Date:          v[2],
		ExpiryDate:    optional(obj, "expiry_date"),
		CredentialID:  optional(obj, "credential_id"),
		CredentialURL: optional(obj, "credential_url"),
	}, true
}

func language(obj map[string]any) (domain.LanguageSkill, bool) {
	v, ok := required(obj, "language", "proficiency")
	if !ok {
		return domain.LanguageSkill{}, false
	}
	level, ok := domain.ParseProficiency(v[1])
	if !ok {
		return domain.LanguageSkill{}, false
	}
	return domain.LanguageSkill{Language: v[0], Proficiency: level}, true
}

func reference(obj map[string]any) (domain.Reference, bool) {
	v, ok := required(obj, "name", "position", "company", "relationship")
	if !ok {
		return domain.Reference{}, false
	}
	return domain.Reference{
		Name:         v[0],
		Position:     v[1],
		Company:      v[2],
		Relationship: v[3],
		Email:        optional(obj, "email"),
		Phone:        optional(obj, "phone"),
	}, true
}

func volunteer(obj map[string]any) (domain.VolunteerEntry, bool) {
	v, ok := required(obj, "organization", "role", "start_date")
	if !ok {
		return domain.VolunteerEntry{}, false
	}
	return domain.VolunteerEntry{
		Organization: v[0],
		Role:         v[1],
		StartDate:    v[2],
		EndDate:      optional(obj, "end_date"),
		Description:  optional(obj, "description"),
	}, true
}
