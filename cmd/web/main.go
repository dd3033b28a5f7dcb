// Package main implements the flashcard UI server. It renders the single
// page UI and forwards generation requests to the API server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/flashcard-generator/internal/config"
	"github.com/phrazzld/flashcard-generator/internal/platform/logger"
)

func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to create UI application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("UI server stopped with error", "error", err)
		os.Exit(1)
	}
}

func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWeb()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("UI configuration loaded",
		"port", cfg.Web.Port,
		"api_base_url", cfg.Web.APIBaseURL,
		"notice_timeout", cfg.Web.NoticeTimeout().String(),
		"client_timeout", cfg.Web.ClientTimeout().String())

	return cfg, l, nil
}
