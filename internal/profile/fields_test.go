package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_String(t *testing.T) {
	t.Parallel()

	f := Fields{
		"title":  "  Backend Engineer ",
		"count":  3.0,
		"form":   []string{"first", "second"},
		"object": map[string]any{},
	}

	s, ok := f.String("title")
	assert.True(t, ok)
	assert.Equal(t, "Backend Engineer", s)

	s, _ = f.String("count")
	assert.Equal(t, "3", s)

	s, _ = f.String("form")
	assert.Equal(t, "first", s)

	_, ok = f.String("object")
	assert.False(t, ok)

	_, ok = f.String("missing")
	assert.False(t, ok)
}

func TestFields_OptionalString(t *testing.T) {
	t.Parallel()

	f := Fields{"summary": "  ", "email": "a@b.c"}

	assert.Nil(t, f.OptionalString("summary"))
	assert.Nil(t, f.OptionalString("missing"))
	require.NotNil(t, f.OptionalString("email"))
	assert.Equal(t, "a@b.c", *f.OptionalString("email"))
}

func TestFields_Int64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		want    int64
		wantOK  bool
		wantErr bool
	}{
		{"string", "5000", 5000, true, false},
		{"float", 42.0, 42, true, false},
		{"json number", json.Number("7"), 7, true, false},
		{"blank", " ", 0, false, false},
		{"fraction", "1.5", 0, false, true},
		{"word", "lots", 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, err := Fields{"n": tt.value}.Int64("n")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestFields_HasAndBool(t *testing.T) {
	t.Parallel()

	f := Fields{"is_remote": "on", "nothing": nil}

	assert.True(t, f.Has("nothing"))
	assert.False(t, f.Has("absent"))

	v, ok := f.Bool("is_remote")
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = f.Bool("absent")
	assert.False(t, ok)
}
