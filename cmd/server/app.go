package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcard-generator/internal/config"
	"github.com/phrazzld/flashcard-generator/internal/generation"
	"github.com/phrazzld/flashcard-generator/internal/platform/gemini"
	"github.com/phrazzld/flashcard-generator/internal/platform/openai"
	"github.com/phrazzld/flashcard-generator/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator         generation.Generator
	generationService service.GenerationService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.ModelName)

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the services around an existing generator.
func newApplicationWithGenerator(cfg *config.Config, logger *slog.Logger, generator generation.Generator) (*application, error) {
	svc, err := service.NewGenerationService(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            logger,
		generator:         generator,
		generationService: svc,
	}, nil
}

// newGenerator builds the generator for the configured provider.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	l := logger.With("component", "llm_generator")
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewGenerator(ctx, l, cfg)
	case config.ProviderOpenAI:
		return openai.NewGenerator(l, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
