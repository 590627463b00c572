package domain

import "time"

// SearchEvent is an append-only record of a job search that carried a free
// text query or a location.
type SearchEvent struct {
	ID          int64
	Query       *string
	Location    *string
	Filters     map[string]any
	ResultCount int
	IPAddress   string
	UserAgent   string
	UserID      *int64
	CreatedAt   time.Time
}
