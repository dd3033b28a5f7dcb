package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/generation"
	"github.com/phrazzld/flashcard-generator/internal/platform/logger"
	"github.com/phrazzld/flashcard-generator/internal/redact"
)

// GenerationService provides flashcard generation operations.
type GenerationService interface {
	// GenerateCards validates req and returns the generated card set.
	GenerateCards(ctx context.Context, req domain.GenerationRequest) (domain.CardSet, error)
}

type generationServiceImpl struct {
	generator generation.Generator
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewGenerationService creates a GenerationService backed by generator.
func NewGenerationService(generator generation.Generator, log *slog.Logger) (GenerationService, error) {
	if generator == nil {
		return nil, NewServiceError("new_generation_service", "generator cannot be nil", ErrGeneratorUnavailable)
	}
	if log == nil {
		log = slog.Default()
	}

	return &generationServiceImpl{
		generator: generator,
		validate:  validator.New(),
		logger:    log.With("component", "generation_service"),
	}, nil
}

// GenerateCards implements GenerationService.
func (s *generationServiceImpl) GenerateCards(
	ctx context.Context,
	req domain.GenerationRequest,
) (domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validate.Struct(req); err != nil {
		return nil, NewServiceError("generate_cards", "invalid request", domain.NewValidationError("request", err.Error(), domain.ErrValidation))
	}
	if err := req.Validate(); err != nil {
		return nil, NewServiceError("generate_cards", "invalid request", err)
	}

	start := time.Now()
	cards, err := s.generator.GenerateCards(ctx, req.Content, req.NumCards)
	elapsed := time.Since(start)
	if err != nil {
		log.ErrorContext(ctx, "card generation failed",
			"error", redact.Error(err),
			"num_cards", req.NumCards,
			"content_length", len(req.Content),
			"duration_ms", elapsed.Milliseconds())
		return nil, NewServiceError("generate_cards", "generator returned an error", err)
	}

	if len(cards) != req.NumCards {
		// Models don't always honour the count; the cards are still usable.
		log.WarnContext(ctx, "generator returned a different number of cards",
			"requested", req.NumCards,
			"returned", len(cards))
	}

	log.InfoContext(ctx, "cards generated",
		"card_count", len(cards),
		"content_length", len(req.Content),
		"duration_ms", elapsed.Milliseconds())

	return cards, nil
}
