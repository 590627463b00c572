// Package searchaudit persists search events after the response has been
// sent. Recording is best effort: failures are logged and never reach the
// caller.
package searchaudit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/search"
)

const (
	defaultWorkers = 8
	defaultTimeout = 5 * time.Second
)

type eventRepo interface {
	Create(ctx context.Context, e *domain.SearchEvent) error
}

// RequestMeta is the caller information captured with a search event.
type RequestMeta struct {
	IP        string
	UserAgent string
	UserID    *int64
}

// Recorder writes search events on a bounded pool of goroutines.
// When all workers are busy new events are dropped.
type Recorder struct {
	repo    eventRepo
	log     *slog.Logger
	timeout time.Duration

	g      errgroup.Group
	mu     sync.RWMutex
	closed bool

	inFlight atomic.Int64
	recorded atomic.Int64
	failed   atomic.Int64
	dropped  atomic.Int64
}

// Stats is a snapshot of recorder counters since start.
type Stats struct {
	InFlight int64 `json:"in_flight"`
	Recorded int64 `json:"recorded"`
	Failed   int64 `json:"failed"`
	Dropped  int64 `json:"dropped"`
	Closed   bool  `json:"closed"`
}

// Stats returns the current counters.
func (r *Recorder) Stats() Stats {
	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	return Stats{
		InFlight: r.inFlight.Load(),
		Recorded: r.recorded.Load(),
		Failed:   r.failed.Load(),
		Dropped:  r.dropped.Load(),
		Closed:   closed,
	}
}

// NewRecorder creates a Recorder running at most workers writes at a time,
// each bounded by timeout.
func NewRecorder(logger *slog.Logger, repo eventRepo, workers int, timeout time.Duration) *Recorder {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	r := &Recorder{
		repo:    repo,
		log:     logger.With("service", "searchaudit"),
		timeout: timeout,
	}
	r.g.SetLimit(workers)
	return r
}

// Record schedules a search event and returns immediately. A nil summary
// means the search carried neither a query nor a location and is not recorded.
// ctx values (request ID) are kept; its cancellation is not.
func (r *Recorder) Record(ctx context.Context, meta RequestMeta, summary *search.Summary, resultCount int) {
	if summary == nil {
		return
	}

	event := &domain.SearchEvent{
		Query:       summary.Query,
		Location:    summary.Location,
		Filters:     summary.Filters,
		ResultCount: resultCount,
		IPAddress:   meta.IP,
		UserAgent:   meta.UserAgent,
		UserID:      meta.UserID,
	}
	taskCtx := context.WithoutCancel(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.dropped.Add(1)
		r.log.WarnContext(ctx, "search event dropped: recorder closed")
		return
	}

	r.inFlight.Add(1)
	started := r.g.TryGo(func() error {
		defer r.inFlight.Add(-1)
		r.write(taskCtx, event)
		return nil
	})
	if !started {
		r.inFlight.Add(-1)
		r.dropped.Add(1)
		r.log.WarnContext(ctx, "search event dropped: all workers busy")
	}
}

func (r *Recorder) write(ctx context.Context, event *domain.SearchEvent) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			r.failed.Add(1)
			r.log.WarnContext(ctx, "search event panic", slog.Any("panic", rec))
		}
	}()

	if err := r.repo.Create(ctx, event); err != nil {
		r.failed.Add(1)
		r.log.WarnContext(ctx, "failed to record search event",
			slog.String("error", err.Error()),
			slog.Int("result_count", event.ResultCount),
		)
		return
	}
	r.recorded.Add(1)
}

// Close stops accepting events and waits for in-flight writes or ctx expiry.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = r.g.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("searchaudit: close: %w", ctx.Err())
	}
}
