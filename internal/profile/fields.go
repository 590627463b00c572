package profile

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Fields is a raw, request-scoped field bag. Values come from JSON decoding
// (string, float64, json.Number, bool, []any, map[string]any, nil) or from
// form decoding (string, []string, nested maps and lists).
type Fields map[string]any

// Has reports whether key was submitted at all, even with a null value.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the trimmed scalar value of key.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	s, ok := scalarString(v)
	return strings.TrimSpace(s), ok
}

// OptionalString returns nil when key is missing or blank.
func (f Fields) OptionalString(key string) *string {
	s, ok := f.String(key)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// Int64 parses key as an integer. ok is false when the key is missing or
// blank; err is set when a value was given but is not an integer.
func (f Fields) Int64(key string) (v int64, ok bool, err error) {
	s, present := f.String(key)
	if !present || s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if fl, ferr := strconv.ParseFloat(s, 64); ferr == nil && fl == float64(int64(fl)) {
			return int64(fl), true, nil
		}
		return 0, false, err
	}
	return n, true, nil
}

// Bool coerces key with the same rules Normalize uses for flags.
func (f Fields) Bool(key string) (value bool, ok bool) {
	v, present := f[key]
	if !present {
		return false, false
	}
	return coerceBool(v), true
}

// scalarString renders a scalar value as a string. Form values arrive as
// []string; the first element is used.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		return strconv.FormatBool(x), true
	case []string:
		if len(x) == 0 {
			return "", true
		}
		return x[0], true
	}
	return "", false
}
