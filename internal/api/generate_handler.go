package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashcard-generator/internal/api/shared"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/service"
)

// GenerationHandler handles flashcard generation HTTP requests
type GenerationHandler struct {
	generationService service.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(generationService service.GenerationService, logger *slog.Logger) *GenerationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationHandler{
		generationService: generationService,
		logger:            logger.With("component", "generation_handler"),
	}
}

// Root handles GET / requests
func (h *GenerationHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Message: RootMessage})
}

// GenerateCards handles POST /generate-cards requests. An omitted num_cards
// defaults to domain.DefaultCards.
func (h *GenerationHandler) GenerateCards(w http.ResponseWriter, r *http.Request) {
	req := domain.GenerationRequest{NumCards: domain.DefaultCards}
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	cards, err := h.generationService.GenerateCards(r.Context(), req)
	if err != nil {
		status := MapErrorToStatusCode(err)
		var opts []shared.ResponseOption
		if status == http.StatusUnprocessableEntity {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
		return
	}

	if cards == nil {
		cards = domain.CardSet{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, domain.GenerationResponse{Cards: cards})
}

