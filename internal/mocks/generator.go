package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/generation"
)

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateCardsCall records the arguments of one GenerateCards call.
type GenerateCardsCall struct {
	Content  string
	NumCards int
}

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateCardsFn overrides Cards and Err when set
	GenerateCardsFn func(ctx context.Context, content string, numCards int) (domain.CardSet, error)

	// Default response values
	Cards domain.CardSet
	Err   error

	mu    sync.Mutex
	calls []GenerateCardsCall
}

// GenerateCards implements the generation.Generator interface
func (m *MockGenerator) GenerateCards(ctx context.Context, content string, numCards int) (domain.CardSet, error) {
	m.mu.Lock()
	m.calls = append(m.calls, GenerateCardsCall{Content: content, NumCards: numCards})
	m.mu.Unlock()

	if m.GenerateCardsFn != nil {
		return m.GenerateCardsFn(ctx, content, numCards)
	}
	return m.Cards, m.Err
}

// Calls returns a copy of the recorded calls.
func (m *MockGenerator) Calls() []GenerateCardsCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GenerateCardsCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times GenerateCards was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Reset clears the call history.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// NewMockGeneratorWithCards creates a MockGenerator that returns the specified cards
func NewMockGeneratorWithCards(cards domain.CardSet) *MockGenerator {
	return &MockGenerator{Cards: cards}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails simulates an upstream generation failure
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrGenerationFailed)
}

// MockGeneratorWithContentBlocked simulates the model refusing the content
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrContentBlocked)
}
