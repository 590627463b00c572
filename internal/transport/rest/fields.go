package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
)

const defaultMaxBodyBytes = 32 << 20

// decodeFields reads a request body into a field bag. JSON bodies keep their
// structure; form bodies (multipart or urlencoded) become strings, string
// lists for repeated or "key[]" fields, and nested maps and lists for
// bracket paths such as "work_experience[0][company]". Uploaded files are
// ignored.
func decodeFields(w http.ResponseWriter, r *http.Request, maxBytes int64) (profile.Fields, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = "application/json"
	}

	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	switch mediaType {
	case "application/json":
		return decodeJSON(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, bodyError(err)
		}
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
		return formFields(r.MultipartForm.Value), nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(err)
		}
		return formFields(r.PostForm), nil
	}
	return nil, domain.NewValidationError("body", "unsupported content type "+mediaType)
}

func decodeJSON(r *http.Request) (profile.Fields, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		return nil, bodyError(err)
	}
	if buf.Len() == 0 {
		return profile.Fields{}, nil
	}

	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	var f map[string]any
	if err := dec.Decode(&f); err != nil {
		return nil, domain.NewValidationError("body", "invalid JSON object")
	}
	if f == nil {
		f = map[string]any{}
	}
	return f, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.NewValidationError("body", fmt.Sprintf("exceeds %d bytes", tooLarge.Limit))
	}
	return domain.NewValidationError("body", "malformed form body")
}

// formFields builds a field bag from form values.
//
// Keys are applied in sorted order. When a plain key and a bracket path share
// a root ("a=x" and "a[b]=y"), the nested form wins.
func formFields(values url.Values) profile.Fields {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	root := map[string]any{}
	for _, key := range keys {
		path, list := splitKey(key)
		insert(root, path, values[key], list)
	}
	for k, v := range root {
		root[k] = listify(v)
	}
	return root
}

// splitKey turns "a[b][0][]" into ["a", "b", "0"] and reports the trailing
// "[]" marker.
func splitKey(key string) (path []string, list bool) {
	base, rest, found := strings.Cut(key, "[")
	path = []string{base}
	if !found {
		return path, false
	}
	path = append(path, strings.Split(strings.TrimSuffix(rest, "]"), "][")...)
	if last := len(path) - 1; last > 0 && path[last] == "" {
		return path[:last], true
	}
	return path, false
}

func insert(node map[string]any, path []string, vs []string, list bool) {
	for _, seg := range path[:len(path)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}

	leaf := path[len(path)-1]
	if _, nested := node[leaf].(map[string]any); nested {
		return
	}
	switch {
	case list:
		existing, _ := node[leaf].([]string)
		node[leaf] = append(existing, vs...)
	case len(vs) == 1:
		node[leaf] = vs[0]
	default:
		node[leaf] = vs
	}
}

// listify converts maps keyed only by non-negative integers into lists
// ordered by index.
func listify(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for k, child := range m {
		m[k] = listify(child)
	}

	if len(m) == 0 {
		return m
	}
	type indexed struct {
		i int
		v any
	}
	items := make([]indexed, 0, len(m))
	for k, child := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			return m
		}
		items = append(items, indexed{i: i, v: child})
	}
	sort.Slice(items, func(a, b int) bool { return items[a].i < items[b].i })

	out := make([]any, len(items))
	for n, it := range items {
		out[n] = it.v
	}
	return out
}
