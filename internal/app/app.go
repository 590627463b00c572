package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/article"
	companyrepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/company"
	cvrepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/cv"
	jobrepo "github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/job"
	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/searchevent"
	"github.com/heartmarshall/jobboard-backend/internal/adapter/postgres/slugstore"
	"github.com/heartmarshall/jobboard-backend/internal/auth"
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

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Repositories
	cvs := cvrepo.New(pool)
	jobs := jobrepo.New(pool)
	companies := companyrepo.New(pool)
	articles := articlerepo.New(pool)
	events := searchevent.New(pool)
	txm := postgres.NewTxManager(pool)

	slugs := slug.NewResolver(slugstore.New(pool), cfg.Slug.MaxCandidates, cfg.Slug.MaxLength)
	validate := validation.New()
	compositor := search.NewCompositor(cfg.Search.DefaultPerPage, cfg.Search.MaxPerPage)

	// Services
	cvService := cv.NewService(logger, cvs, slugs, txm, validate)
	jobService := job.NewService(logger, jobs, companies, slugs, validate, compositor)
	companyService := company.NewService(logger, companies, slugs, validate)
	articleService := article.NewService(logger, articles, slugs, validate)

	recorder := searchaudit.NewRecorder(logger, events, cfg.Audit.Workers, cfg.Audit.Timeout)
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	maxBytes := cfg.Server.MaxUploadBytes
	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, recorder, Version),
		CV:      rest.NewCVHandler(cvService, logger, maxBytes),
		Job:     rest.NewJobHandler(jobService, recorder, logger, maxBytes),
		Content: rest.NewContentHandler(companyService, articleService, logger, maxBytes),
	}, limiter.Limit(cfg.Search.RatePerMinute))

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		// In-flight audit writes finish before the pool closes.
		if err := recorder.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("search audit: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
