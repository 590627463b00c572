package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/search"
	"github.com/heartmarshall/jobboard-backend/internal/searchaudit"
	"github.com/heartmarshall/jobboard-backend/internal/service/job"
	"github.com/heartmarshall/jobboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/jobboard-backend/pkg/ctxutil"
)

type jobService interface {
	Create(ctx context.Context, input job.CreateInput) (*domain.Job, error)
	Update(ctx context.Context, input job.UpdateInput) (*domain.Job, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Job, error)
	Search(ctx context.Context, values url.Values) (job.SearchResult, *search.Summary, error)
}

type searchRecorder interface {
	Record(ctx context.Context, meta searchaudit.RequestMeta, summary *search.Summary, resultCount int)
}

// JobHandler serves job posting and search endpoints.
type JobHandler struct {
	svc      jobService
	audit    searchRecorder
	log      *slog.Logger
	maxBytes int64
}

// NewJobHandler creates a JobHandler. maxBytes caps request bodies.
func NewJobHandler(svc jobService, audit searchRecorder, logger *slog.Logger, maxBytes int64) *JobHandler {
	return &JobHandler{svc: svc, audit: audit, log: logger.With("handler", "job"), maxBytes: maxBytes}
}

// Create handles POST /jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	j, err := h.svc.Create(r.Context(), job.CreateInput{Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toJobResponse(j))
}

// Update handles PUT /jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	j, err := h.svc.Update(r.Context(), job.UpdateInput{ID: id, Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}

// Get handles GET /jobs/{slug}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	j, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}

// Search handles GET /jobs. The response is written and flushed before the
// search is handed to the audit recorder.
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, summary, err := h.svc.Search(r.Context(), r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := searchResponse{
		Data:    make([]jobResponse, 0, len(res.Jobs)),
		Total:   res.Total,
		Page:    res.Page,
		PerPage: res.PerPage,
	}
	for i := range res.Jobs {
		resp.Data = append(resp.Data, toJobResponse(&res.Jobs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
	_ = http.NewResponseController(w).Flush()

	h.audit.Record(r.Context(), searchaudit.RequestMeta{
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		UserID:    ctxutil.UserIDPtrFromCtx(r.Context()),
	}, summary, res.Total)
}
