package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// MockRequester implements task.Requester for testing
type MockRequester struct {
	// GenerateFn overrides Cards and Err when set
	GenerateFn func(ctx context.Context, req domain.GenerationRequest) (domain.CardSet, error)

	Cards domain.CardSet
	Err   error

	mu       sync.Mutex
	requests []domain.GenerationRequest
}

// Generate records req and returns the configured response.
func (m *MockRequester) Generate(ctx context.Context, req domain.GenerationRequest) (domain.CardSet, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Cards, m.Err
}

// Requests returns a copy of every request seen so far.
func (m *MockRequester) Requests() []domain.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.GenerationRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// CallCount returns how many times Generate was called.
func (m *MockRequester) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
