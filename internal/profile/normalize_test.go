package profile

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

func TestNormalize_SkillsFlattening(t *testing.T) {
	t.Parallel()

	const skillsJSON = `[{"name":"Go"},"Rust",{"bad":1},""]`

	var decoded []any
	require.NoError(t, json.Unmarshal([]byte(skillsJSON), &decoded))

	tests := []struct {
		name  string
		value any
	}{
		{"json string", skillsJSON},
		{"decoded list", decoded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Normalize(Fields{"skills": tt.value}, CVSchema)
			assert.Equal(t, []string{"Go", "Rust"}, p.Skills)
			assert.True(t, p.Submitted[domain.SectionSkills])
		})
	}
}

func TestNormalize_SkillsBlankAndNonStringDropped(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"skills":  []any{"  ", 42.0, map[string]any{"name": "  SQL "}, nil, true, map[string]any{"name": 3.0}},
		"hobbies": []string{"chess", "", " climbing "},
	}, CVSchema)

	assert.Equal(t, []string{"SQL"}, p.Skills)
	assert.Equal(t, []string{"chess", "climbing"}, p.Hobbies)
}

func TestNormalize_WorkExperienceFiltering(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"work_experience": []any{
			map[string]any{"position": "Dev", "company": "Acme", "start_date": "2020-01-01"},
			map[string]any{"position": "Intern", "company": "Acme"},
			map[string]any{"position": "Lead", "company": "Globex", "start_date": "2022-03-01", "is_current": "yes"},
		},
	}, CVSchema)

	require.Len(t, p.WorkExperience, 2)
	assert.Equal(t, "Dev", p.WorkExperience[0].Position)
	assert.Equal(t, "Lead", p.WorkExperience[1].Position)
	assert.True(t, p.WorkExperience[1].IsCurrent)
}

func TestNormalize_WorkExperienceMissingStartDate(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"work_experience": `[{"position":"Dev","company":"Acme"},{"position":"Lead","company":"Globex","start_date":"2021-05-01"}]`,
	}, CVSchema)

	require.Len(t, p.WorkExperience, 1)
	assert.Equal(t, "Lead", p.WorkExperience[0].Position)
	assert.Equal(t, "Globex", p.WorkExperience[0].Company)
}

func TestNormalize_JSONStringCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{"invalid json", "[{not json"},
		{"json object", `{"position":"Dev"}`},
		{"json scalar", `42`},
		{"plain word", "Go"},
		{"number", 12.0},
		{"null", nil},
		{"empty array", "[]"},
		{"trailing data", `[{"degree":"BSc","field_of_study":"CS","institution":"MIT","start_date":"2010"}] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Normalize(Fields{"education": tt.value}, CVSchema)
			assert.NotNil(t, p.Education)
			assert.Empty(t, p.Education)
			assert.True(t, p.Submitted[domain.SectionEducation], "cleared section must still be written")
		})
	}
}

func TestNormalize_UnsubmittedSectionsNotMarked(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{"full_name": "Jane"}, CVSchema)

	assert.Empty(t, p.SubmittedSections())
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Volunteer)
	_, ok := p.Flag("is_public")
	assert.False(t, ok)
	assert.Equal(t, domain.URLUnspecified, p.URL("github_url").State)
}

func TestNormalize_BooleanCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value any
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"On", true},
		{"y", true},
		{"t", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"maybe", false},
		{true, true},
		{false, false},
		{1.0, true},
		{0.0, false},
		{json.Number("1"), true},
		{[]string{"on"}, true},
		{nil, false},
		{map[string]any{}, false},
	}

	for _, tt := range tests {
		p := Normalize(Fields{"is_public": tt.value}, CVSchema)
		got, ok := p.Flag("is_public")
		if !ok {
			t.Errorf("value %#v: flag not recorded", tt.value)
			continue
		}
		if got != tt.want {
			t.Errorf("value %#v: got %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestNormalize_Languages(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"languages": []any{
			map[string]any{"language": "English", "proficiency": "Native"},
			map[string]any{"language": "German", "proficiency": "expert"},
			map[string]any{"language": "French"},
			map[string]any{"language": "Spanish", "proficiency": " basic "},
		},
	}, CVSchema)

	assert.Equal(t, []domain.LanguageSkill{
		{Language: "English", Proficiency: domain.ProficiencyNative},
		{Language: "Spanish", Proficiency: domain.ProficiencyBasic},
	}, p.Languages)
}

func TestNormalize_OtherSections(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"education": []any{
			map[string]any{"degree": "BSc", "field_of_study": "CS", "institution": "MIT", "start_date": "2010", "grade": "A"},
			map[string]any{"degree": "MSc", "field_of_study": "CS", "institution": ""},
		},
		"certifications": []any{
			map[string]any{"name": "CKA", "issuer": "CNCF", "date": "2023-01-01", "credential_url": ""},
			map[string]any{"name": "AWS"},
		},
		"references": []any{
			map[string]any{"name": "Bob", "position": "CTO", "company": "Acme", "relationship": "manager", "email": "bob@acme.io"},
			map[string]any{"name": "Eve", "position": "CEO", "company": "Acme"},
		},
		"volunteer": []any{
			map[string]any{"organization": "Red Cross", "role": "Helper", "start_date": "2019"},
			"not an object",
		},
	}, CVSchema)

	require.Len(t, p.Education, 1)
	require.NotNil(t, p.Education[0].Grade)
	assert.Equal(t, "A", *p.Education[0].Grade)

	require.Len(t, p.Certifications, 1)
	assert.Nil(t, p.Certifications[0].CredentialURL)

	require.Len(t, p.References, 1)
	require.NotNil(t, p.References[0].Email)
	assert.Nil(t, p.References[0].Phone)

	require.Len(t, p.Volunteer, 1)
	assert.Equal(t, "Red Cross", p.Volunteer[0].Organization)

	assert.Equal(t, []domain.Section{
		domain.SectionEducation,
		domain.SectionCertifications,
		domain.SectionReferences,
		domain.SectionVolunteer,
	}, p.SubmittedSections())
}

func TestNormalize_ExtraKeysDropped(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"work_experience": []any{map[string]any{
			"position": "Dev", "company": "Acme", "start_date": "2020",
			"salary": 100000.0, "manager": "Bob",
		}},
	}, CVSchema)
	require.Len(t, p.WorkExperience, 1)

	data, err := json.Marshal(p.WorkExperience[0])
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))

	keys := make([]string, 0, len(stored))
	for k := range stored {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"company", "description", "end_date", "is_current", "location", "position", "start_date"}, keys)
}

func TestNormalize_URLFields(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"linkedin_url":  "",
		"github_url":    "  https://github.com/jane  ",
		"portfolio_url": nil,
		"website_url":   "   ",
	}, CVSchema)

	assert.Equal(t, domain.OptionalURL{State: domain.URLCleared}, p.URL("linkedin_url"))
	assert.Equal(t, domain.OptionalURL{State: domain.URLSet, Value: "https://github.com/jane"}, p.URL("github_url"))
	assert.Equal(t, domain.URLCleared, p.URL("portfolio_url").State)
	assert.Equal(t, domain.URLCleared, p.URL("website_url").State)

	job := Normalize(Fields{}, JobSchema)
	assert.Equal(t, domain.URLUnspecified, job.URL("application_url").State)
}

func TestNormalize_SchemaLimitsSections(t *testing.T) {
	t.Parallel()

	p := Normalize(Fields{
		"skills":          "[\"Go\"]",
		"work_experience": "[]",
	}, JobSchema)

	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.Equal(t, []domain.Section{domain.SectionSkills}, p.SubmittedSections())
}

func TestNormalize_JSONStringKeepsNumberPrecision(t *testing.T) {
	t.Parallel()

	const big = "12345678901234567890"
	cert := `{"name":"CKA","issuer":"CNCF","date":"2023-01-01","credential_id":` + big + `}`

	fromString := Normalize(Fields{"certifications": "[" + cert + "]"}, CVSchema)

	var body Fields
	dec := json.NewDecoder(strings.NewReader(`{"certifications":[` + cert + `]}`))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&body))
	fromBody := Normalize(body, CVSchema)

	require.Len(t, fromString.Certifications, 1)
	require.NotNil(t, fromString.Certifications[0].CredentialID)
	assert.Equal(t, big, *fromString.Certifications[0].CredentialID)
	assert.Equal(t, fromBody.Certifications, fromString.Certifications)
}
