package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/service/cv"
)

type cvService interface {
	Create(ctx context.Context, input cv.CreateInput) (*domain.CV, error)
	Update(ctx context.Context, input cv.UpdateInput) (*domain.CV, error)
	GetBySlug(ctx context.Context, slug string) (*domain.CV, error)
}

// CVHandler serves CV endpoints.
type CVHandler struct {
	svc      cvService
	log      *slog.Logger
	maxBytes int64
}

// NewCVHandler creates a CVHandler. maxBytes caps request bodies.
func NewCVHandler(svc cvService, logger *slog.Logger, maxBytes int64) *CVHandler {
	return &CVHandler{svc: svc, log: logger.With("handler", "cv"), maxBytes: maxBytes}
}

// Create handles POST /cvs.
func (h *CVHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), cv.CreateInput{Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCVResponse(c))
}

// Update handles PUT /cvs/{id}.
func (h *CVHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), cv.UpdateInput{ID: id, Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCVResponse(c))
}

// Get handles GET /cvs/{slug}.
func (h *CVHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCVResponse(c))
}

// pathID parses the {id} path segment, writing 400 when it is not a
// positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
