//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/article"
	companyrepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/company"
	cvrepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/cv"
	jobrepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/job"
	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/searchevent"
	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/slugstore"
	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/jobboard-backend/internal/auth"
	"github.com/heartmarshall/jobboard-backend/internal/config"
	"github.com/heartmarshall/jobboard-backend/internal/search"
	"github.com/heartmarshall/jobboard-backend/internal/searchaudit"
	"github.com/heartmarshall/jobboard-backend/internal/service/article"
	"github.com/heartmarshall/jobboard-backend/internal/service/company"
	"github.com/heartmarshall/jobboard-backend/internal/service/cv"
	"github.com/heartmarshall/jobboard-backend/internal/service/job"
	"github.com/heartmarshall/jobboard-backend/internal/slug"
	"github.com/heartmarshall/jobboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/jobboard-backend/internal/transport/rest"
	"github.com/heartmarshall/jobboard-backend/internal/validation"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	jwt      *authpkg.JWTManager
	recorder *searchaudit.Recorder
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// Repositories.
	cvs := cvrepo.New(pool)
	jobs := jobrepo.New(pool)
	companies := companyrepo.New(pool)
	articles := articlerepo.New(pool)

	slugs := slug.NewResolver(slugstore.New(pool), 0, 0)
	validate := validation.New()

	// Services.
	cvService := cv.NewService(logger, cvs, slugs, txm, validate)
	jobService := job.NewService(logger, jobs, companies, slugs, validate, search.NewCompositor(20, 100))
	companyService := company.NewService(logger, companies, slugs, validate)
	articleService := article.NewService(logger, articles, slugs, validate)

	recorder := searchaudit.NewRecorder(logger, searchevent.New(pool), 4, 5*time.Second)
	t.Cleanup(func() { _ = recorder.Close(context.Background()) })

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, recorder, "test-version"),
		CV:      rest.NewCVHandler(cvService, logger, 1<<20),
		Job:     rest.NewJobHandler(jobService, recorder, logger, 1<<20),
		Content: rest.NewContentHandler(companyService, articleService, logger, 1<<20),
	}, limiter.Limit(1000))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		jwt:      jwtMgr,
		recorder: recorder,
	}
}

// createTestUser inserts a user directly into the DB and returns its ID with
// a valid access token.
func createTestUser(t *testing.T, ts *testServer) (int64, string) {
	t.Helper()

	userID := testhelper.SeedUser(t, ts.Pool)
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err, "generate token")
	return userID, tok
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a request and decodes the JSON response into a map.
func (ts *testServer) do(t *testing.T, method, path, contentType string, body io.Reader, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("User-Agent", "e2e-test")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Non-JSON bodies (rate limiting) are left undecoded.
	var result map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

// postJSON sends body encoded as JSON.
func (ts *testServer) postJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	return ts.do(t, method, path, "application/json", bytes.NewReader(b), token)
}

// postMultipart sends pairs as multipart form fields in order.
func (ts *testServer) postMultipart(t *testing.T, method, path string, pairs [][2]string, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range pairs {
		require.NoError(t, mw.WriteField(p[0], p[1]))
	}
	require.NoError(t, mw.Close())
	return ts.do(t, method, path, mw.FormDataContentType(), &buf, token)
}
