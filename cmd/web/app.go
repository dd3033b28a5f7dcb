package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/flashcard-generator/internal/api/middleware"
	"github.com/phrazzld/flashcard-generator/internal/client"
	"github.com/phrazzld/flashcard-generator/internal/config"
	"github.com/phrazzld/flashcard-generator/internal/coordinator"
	"github.com/phrazzld/flashcard-generator/internal/task"
	"github.com/phrazzld/flashcard-generator/internal/web"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// application holds the UI server's dependencies.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	coordinator *coordinator.Coordinator
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	c, err := client.New(client.Config{
		BaseURL: cfg.Web.APIBaseURL,
		Timeout: cfg.Web.ClientTimeout(),
	}, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return newApplicationWithRequester(cfg, logger, c)
}

func newApplicationWithRequester(cfg *config.Config, logger *slog.Logger, requester task.Requester) (*application, error) {
	coord, err := coordinator.New(requester, coordinator.Config{
		NoticeTimeout: cfg.Web.NoticeTimeout(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create coordinator: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		coordinator: coord,
	}, nil
}

func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	web.NewHandler(app.coordinator, app.config.Web.NoticeTimeout(), app.logger).Register(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// Run serves the UI until ctx is cancelled, then shuts the HTTP server
// down and waits for any in-flight generation request.
func (app *application) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Web.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("Starting UI server", "port", app.config.Web.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("Shutting down UI server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
		if err := app.coordinator.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("coordinator close: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	app.logger.Info("UI server shutdown completed")
	return nil
}
