package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/events"
	"github.com/phrazzld/flashcard-generator/internal/session"
)

var (
	// ErrGenerationInFlight is returned when a request is already pending.
	ErrGenerationInFlight = errors.New("a generation request is already in flight")

	// ErrEmptyContent is returned when the content is blank. No request is made.
	ErrEmptyContent = errors.New("content is empty")

	// ErrNothingToExport is returned by Export when there are no cards.
	ErrNothingToExport = errors.New("no cards to export")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("coordinator is closed")
)

// GenerationError reports a failed generation request. Its message is the
// one shown to users; the cause is kept for logs and errors.Is.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return session.FailureMessage }

// Unwrap returns the underlying cause.
func (e *GenerationError) Unwrap() error { return e.Err }

// failureCause rebuilds an error from a failure event. The kind's sentinel
// is wrapped so errors.Is works for callers; the reason is redacted text.
func failureCause(p events.GenerationFailed) error {
	var sentinel error
	switch p.Kind {
	case events.FailureStatus:
		sentinel = domain.ErrUnexpectedStatus
	case events.FailureMalformed:
		sentinel = domain.ErrMalformedResponse
	case events.FailureCancelled:
		sentinel = context.Canceled
	default:
		return errors.New(p.Reason)
	}
	if p.Reason == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, p.Reason)
}
