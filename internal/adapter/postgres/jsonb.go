package postgres

import (
	"encoding/json"
	"fmt"
)

// JSONB encodes v as a JSON text parameter for a jsonb column. nil slices
// are stored as an empty array, nil maps as SQL NULL.
func JSONB(v any) (*string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		if x == nil {
			return nil, nil
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	s := string(data)
	if s == "null" {
		s = "[]"
	}
	return &s, nil
}

// DecodeJSONB unmarshals a jsonb column value into dst. Empty or NULL
// values leave dst untouched.
func DecodeJSONB(data []byte, dst any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
