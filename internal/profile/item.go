package profile

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

type itemKind int

const (
	itemOther itemKind = iota
	itemString
	itemObject
)

// item is one element of a submitted list, classified once at the boundary.
type item struct {
	kind itemKind
	str  string
	obj  map[string]any
}

func classify(v any) item {
	switch x := v.(type) {
	case string:
		return item{kind: itemString, str: x}
	case map[string]any:
		return item{kind: itemObject, obj: x}
	case map[string]string:
		obj := make(map[string]any, len(x))
		for k, s := range x {
			obj[k] = s
		}
		return item{kind: itemObject, obj: obj}
	}
	return item{kind: itemOther}
}

// coerceList turns a submitted multi-value field into items. A string is
// parsed as a JSON array; anything that is not a list becomes empty.
func coerceList(v any) []item {
	var raw []any
	switch x := v.(type) {
	case []any:
		raw = x
	case []string:
		raw = make([]any, len(x))
		for i, s := range x {
			raw[i] = s
		}
	case []map[string]any:
		raw = make([]any, len(x))
		for i, m := range x {
			raw[i] = m
		}
	case string:
		raw = decodeArray(x)
	}

	items := make([]item, 0, len(raw))
	for _, r := range raw {
		items = append(items, classify(r))
	}
	return items
}

// decodeArray parses s as a single JSON array, keeping numbers as
// json.Number like JSON request bodies do. Returns nil on any error.
func decodeArray(s string) []any {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil
	}
	return raw
}

// coerceBool applies the flag rules: canonical tokens for strings, non-zero
// for numbers, false for anything unrecognized.
func coerceBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, ok := domain.ParseBoolToken(x)
		return ok && b
	case []string:
		if len(x) == 0 {
			return false
		}
		return coerceBool(x[0])
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	}
	return false
}

// flatten reduces items to non-blank strings: objects contribute their
// "name" property, strings themselves, anything else is dropped.
func flatten(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		switch it.kind {
		case itemString:
			s = it.str
		case itemObject:
			name, ok := it.obj["name"].(string)
			if !ok {
				continue
			}
			s = name
		default:
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// required returns the trimmed values of keys, or false if any is blank.
func required(obj map[string]any, keys ...string) ([]string, bool) {
	out := make([]string, len(keys))
	for i, k := range keys {
		s, ok := scalarString(obj[k])
		if !ok {
			return nil, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func optional(obj map[string]any, key string) *string {
	s, ok := scalarString(obj[key])
	if !ok {
		return nil
	}
	return domain.TrimOrNil(s)
}

// records keeps the objects accepted by build, preserving order.
// The result is never nil so an emptied section is still written.
func records[T any](items []item, build func(map[string]any) (T, bool)) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.kind != itemObject {
			continue
		}
		if rec, ok := build(it.obj); ok {
			out = append(out, rec)
		}
	}
	return out
}
