package generation

import (
	"context"

	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// Generator defines the interface for generating flashcards from text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// GenerateCards asks the model for numCards question/answer pairs
	// covering content. The returned set is validated: every card has a
	// non-empty question and answer.
	GenerateCards(ctx context.Context, content string, numCards int) (domain.CardSet, error)
}

// SystemInstruction is sent alongside the prompt to every provider.
const SystemInstruction = "You are a helpful educational content transformer."
