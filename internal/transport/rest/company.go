package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/service/article"
	"github.com/heartmarshall/jobboard-backend/internal/service/company"
)

type companyService interface {
	Create(ctx context.Context, input company.CreateInput) (*domain.Company, error)
}

type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
}

// ContentHandler serves company and article endpoints.
type ContentHandler struct {
	companies companyService
	articles  articleService
	log       *slog.Logger
	maxBytes  int64
}

// NewContentHandler creates a ContentHandler. maxBytes caps request bodies.
func NewContentHandler(companies companyService, articles articleService, logger *slog.Logger, maxBytes int64) *ContentHandler {
	return &ContentHandler{
		companies: companies,
		articles:  articles,
		log:       logger.With("handler", "content"),
		maxBytes:  maxBytes,
	}
}

// CreateCompany handles POST /companies.
func (h *ContentHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.companies.Create(r.Context(), company.CreateInput{Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCompanyResponse(c))
}

// CreateArticle handles POST /articles.
func (h *ContentHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.articles.Create(r.Context(), article.CreateInput{Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArticleResponse(a))
}
