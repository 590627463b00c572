package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/jobboard-backend/internal/searchaudit"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type auditStatser interface {
	Stats() searchaudit.Stats
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	audit   auditStatser
	version string
}

// NewHealthHandler creates a HealthHandler. audit may be nil.
func NewHealthHandler(db dbPinger, audit auditStatser, version string) *HealthHandler {
	return &HealthHandler{db: db, audit: audit, version: version}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string             `json:"status"`
	Latency string             `json:"latency,omitempty"`
	Audit   *searchaudit.Stats `json:"audit,omitempty"`
}

// Live always answers 200 while the process runs.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 until the database responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.pingDB(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports database latency and search audit counters. A closed audit
// recorder degrades the status but keeps 200, since searches still work.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}

	latency, err := h.pingDB(r.Context())
	if err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	if h.audit != nil {
		st := h.audit.Stats()
		comp := CompStatus{Status: "ok", Audit: &st}
		if st.Closed {
			comp.Status = "down"
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
		resp.Components["search_audit"] = comp
	}

	status := http.StatusOK
	if resp.Status == "down" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	return time.Since(start), err
}
