package rest

import (
	"net/http"

	"github.com/heartmarshall/jobboard-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	CV      *CVHandler
	Job     *JobHandler
	Content *ContentHandler
}

// NewRouter registers all routes. searchLimit wraps the job search endpoint.
func NewRouter(h Handlers, searchLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /cvs", h.CV.Create)
	mux.HandleFunc("PUT /cvs/{id}", h.CV.Update)
	mux.HandleFunc("GET /cvs/{slug}", h.CV.Get)

	mux.Handle("GET /jobs", searchLimit(http.HandlerFunc(h.Job.Search)))
	mux.HandleFunc("POST /jobs", h.Job.Create)
	mux.HandleFunc("PUT /jobs/{id}", h.Job.Update)
	mux.HandleFunc("GET /jobs/{slug}", h.Job.Get)

	mux.HandleFunc("POST /companies", h.Content.CreateCompany)
	mux.HandleFunc("POST /articles", h.Content.CreateArticle)

	return mux
}
