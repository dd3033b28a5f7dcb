package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// ParseCards converts raw model output into a validated CardSet.
//
// Models are asked for a bare JSON array but frequently wrap it in a
// markdown code fence or return an object with a "cards" field; both are
// accepted. Anything else, an empty list, or a card missing either side is
// ErrInvalidResponse.
func ParseCards(raw string) (domain.CardSet, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty model output", ErrInvalidResponse)
	}

	var cards domain.CardSet
	switch text[0] {
	case '[':
		if err := json.Unmarshal([]byte(text), &cards); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON array: %v", ErrInvalidResponse, err)
		}
	case '{':
		var envelope domain.GenerationResponse
		if err := json.Unmarshal([]byte(text), &envelope); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON object: %v", ErrInvalidResponse, err)
		}
		cards = envelope.Cards
	default:
		return nil, fmt.Errorf("%w: output is not JSON", ErrInvalidResponse)
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards in response", ErrInvalidResponse)
	}
	for i := range cards {
		cards[i].Question = strings.TrimSpace(cards[i].Question)
		cards[i].Answer = strings.TrimSpace(cards[i].Answer)
	}
	if err := cards.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return cards, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// Drop the info string, e.g. "json".
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
