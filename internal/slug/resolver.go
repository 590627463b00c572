// Package slug resolves globally unique, human-readable identifiers for
// entities of a given kind.
package slug

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
)

const (
	// DefaultMaxCandidates is the number of numbered candidates tried after the root.
	DefaultMaxCandidates = 20
	// DefaultMaxLength bounds the length of a resolved slug.
	DefaultMaxLength = 80

	fallbackSuffixLen = 8
)

type slugRepo interface {
	ExistingSlugs(ctx context.Context, kind domain.EntityKind, candidates []string, excludeID *int64) ([]string, error)
}

// Resolver picks the first free slug for a label. It is advisory: the
// storage layer's unique constraint remains the source of truth.
type Resolver struct {
	repo          slugRepo
	maxCandidates int
	maxLength     int
	entropy       func() string
}

// NewResolver creates a Resolver. Non-positive limits fall back to defaults.
func NewResolver(repo slugRepo, maxCandidates, maxLength int) *Resolver {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Resolver{
		repo:          repo,
		maxCandidates: maxCandidates,
		maxLength:     maxLength,
		entropy:       randomSuffix,
	}
}

// Resolve returns a slug derived from label that no stored record of kind
// currently holds. excludeID, when set, ignores that record's own row.
func (r *Resolver) Resolve(ctx context.Context, kind domain.EntityKind, label string, excludeID *int64) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("slug: unknown entity kind %q", kind)
	}

	root := r.Root(kind, label)
	candidates := Candidates(root, r.maxCandidates)

	taken, err := r.repo.ExistingSlugs(ctx, kind, candidates, excludeID)
	if err != nil {
		return "", fmt.Errorf("slug: check existing: %w", err)
	}

	if s, ok := firstFree(candidates, taken); ok {
		return s, nil
	}

	// Every numbered candidate is taken; a random suffix cannot exhaust.
	return root + "-" + r.entropy(), nil
}

// Root returns the normalized root token for label, leaving room for the
// longest suffix the resolver may append.
func (r *Resolver) Root(kind domain.EntityKind, label string) string {
	root := Slugify(label, r.maxLength-fallbackSuffixLen-1)
	if root == "" {
		return kind.String()
	}
	return root
}

// Candidates returns root, root-1, ..., root-k in generation order.
func Candidates(root string, k int) []string {
	out := make([]string, 0, k+1)
	out = append(out, root)
	for i := 1; i <= k; i++ {
		out = append(out, root+"-"+strconv.Itoa(i))
	}
	return out
}

func firstFree(candidates, taken []string) (string, bool) {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}
	for _, c := range candidates {
		if _, ok := used[c]; !ok {
			return c, true
		}
	}
	return "", false
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:fallbackSuffixLen]
}

// CreateWithRetry resolves a slug and hands it to write. When write reports a
// unique violation (domain.ErrAlreadyExists) the slug is resolved again and
// the write retried once; a second violation is returned as domain.ErrConflict.
func CreateWithRetry(
	ctx context.Context,
	resolve func(ctx context.Context) (string, error),
	write func(ctx context.Context, slug string) error,
) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		s, err := resolve(ctx)
		if err != nil {
			return "", err
		}

		err = write(ctx, s)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("slug: %w: %w", domain.ErrConflict, lastErr)
}
