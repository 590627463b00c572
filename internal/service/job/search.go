package job

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/search"
)

// SearchResult is one page of matching postings.
type SearchResult struct {
	Jobs    []domain.Job
	Total   int
	Page    int
	PerPage int
}

// Search runs a filtered job search. The returned summary is non-nil only
// when the request carried a text query or a location; callers hand it to
// the search audit log together with Total.
func (s *Service) Search(ctx context.Context, values url.Values) (SearchResult, *search.Summary, error) {
	q, summary := s.compositor.Compose(search.ParseParams(values))

	jobs, total, err := s.jobs.Search(ctx, q)
	if err != nil {
		return SearchResult{}, nil, fmt.Errorf("search jobs: %w", err)
	}

	s.log.DebugContext(ctx, "job search",
		slog.Any("filters", q.Names()),
		slog.Int("total", total),
	)

	return SearchResult{
		Jobs:    jobs,
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, summary, nil
}
