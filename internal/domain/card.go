package domain

import (
	"fmt"
	"strings"
)

// Bounds for the number of cards a single generation may request.
const (
	MinCards     = 1
	MaxCards     = 10
	DefaultCards = 5
)

// GenerationRequest is the payload sent to the generation endpoint.
type GenerationRequest struct {
	Content  string `json:"content"   validate:"required"`
	NumCards int    `json:"num_cards" validate:"min=1,max=10"`
}

// Validate checks the request invariants that the validator tags can't
// express, namely that the content isn't only whitespace.
func (r GenerationRequest) Validate() error {
	if IsBlank(r.Content) {
		return NewValidationError("content", "cannot be empty", ErrEmptyContent)
	}
	if r.NumCards < MinCards || r.NumCards > MaxCards {
		return NewValidationError(
			"num_cards",
			fmt.Sprintf("must be between %d and %d", MinCards, MaxCards),
			ErrInvalidCardCount,
		)
	}
	return nil
}

// Card is a single question/answer pair produced by the generation service.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate reports whether both sides of the card are present.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Question) == "" {
		return NewValidationError("question", "cannot be empty", ErrInvalidCard)
	}
	if strings.TrimSpace(c.Answer) == "" {
		return NewValidationError("answer", "cannot be empty", ErrInvalidCard)
	}
	return nil
}

// CardSet is the ordered collection of cards currently displayed.
// It is replaced wholesale on every successful generation.
type CardSet []Card

// Len returns the number of cards in the set.
func (s CardSet) Len() int { return len(s) }

// Empty reports whether the set holds no cards.
func (s CardSet) Empty() bool { return len(s) == 0 }

// Clone returns a copy that shares no backing array with s.
func (s CardSet) Clone() CardSet {
	if s == nil {
		return nil
	}
	out := make(CardSet, len(s))
	copy(out, s)
	return out
}

// Validate checks every card in the set, reporting the first invalid index.
func (s CardSet) Validate() error {
	for i, c := range s {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}

// GenerationResponse is the envelope returned by the generation endpoint.
type GenerationResponse struct {
	Cards CardSet `json:"cards"`
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
