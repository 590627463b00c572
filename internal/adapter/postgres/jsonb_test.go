package postgres

import (
	"testing"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

func TestJSONB(t *testing.T) {
	t.Parallel()

	var nilSkills []string
	var nilFilters map[string]any

	tests := []struct {
		name string
		in   any
		want *string
	}{
		{"nil", nil, nil},
		{"nil map", nilFilters, nil},
		{"nil slice", nilSkills, strPtr("[]")},
		{"strings", []string{"Go", "Rust"}, strPtr(`["Go","Rust"]`)},
		{"map", map[string]any{"category": "it"}, strPtr(`{"category":"it"}`)},
		{"records", []domain.LanguageSkill{{Language: "English", Proficiency: domain.ProficiencyNative}}, strPtr(`[{"language":"English","proficiency":"native"}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := JSONB(tt.in)
			if err != nil {
				t.Fatalf("JSONB: %v", err)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %q, want nil", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("got %v, want %q", got, *tt.want)
			}
		})
	}
}

func TestDecodeJSONB(t *testing.T) {
	t.Parallel()

	skills := []string{}
	if err := DecodeJSONB(nil, &skills); err != nil {
		t.Fatalf("DecodeJSONB(nil): %v", err)
	}
	if skills == nil || len(skills) != 0 {
		t.Fatalf("expected untouched empty slice, got %v", skills)
	}

	if err := DecodeJSONB([]byte(`["Go"]`), &skills); err != nil {
		t.Fatalf("DecodeJSONB: %v", err)
	}
	if len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("got %v", skills)
	}

	if err := DecodeJSONB([]byte(`{`), &skills); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func strPtr(s string) *string { return &s }
