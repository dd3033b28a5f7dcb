package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/events"
	"github.com/phrazzld/flashcard-generator/internal/redact"
)

// Common errors
var (
	ErrNilRequester = errors.New("requester cannot be nil")
	ErrNilEmitter   = errors.New("event emitter cannot be nil")
	ErrZeroToken    = errors.New("token cannot be zero")

	// ErrEventNotDelivered means the outcome event could not be published,
	// so nobody has observed how the request ended.
	ErrEventNotDelivered = errors.New("generation outcome event not delivered")

	// ErrRequestFailed wraps the requester's error when the request itself failed.
	ErrRequestFailed = errors.New("generation request failed")
)

// Requester sends one generation request and waits for its response.
type Requester interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.CardSet, error)
}

// GenerationTask issues one generation request and publishes the outcome
// as a TypeGenerationCompleted or TypeGenerationFailed event carrying the
// task's token.
type GenerationTask struct {
	id        uuid.UUID
	token     uint64
	request   domain.GenerationRequest
	requester Requester
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// NewGenerationTask creates a new generation task
func NewGenerationTask(
	token uint64,
	request domain.GenerationRequest,
	requester Requester,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*GenerationTask, error) {
	if requester == nil {
		return nil, ErrNilRequester
	}
	if emitter == nil {
		return nil, ErrNilEmitter
	}
	if token == 0 {
		return nil, ErrZeroToken
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerationTask{
		id:        uuid.New(),
		token:     token,
		request:   request,
		requester: requester,
		emitter:   emitter,
		logger:    logger.With("task_type", TaskTypeGeneration, "token", token),
	}, nil
}

// ID returns the task's unique identifier
func (t *GenerationTask) ID() uuid.UUID { return t.id }

// Type returns the task type identifier
func (t *GenerationTask) Type() string { return TaskTypeGeneration }

// Token returns the request token the outcome event will carry.
func (t *GenerationTask) Token() uint64 { return t.token }

// Execute sends the request, then emits exactly one outcome event. A
// request failure is still reported through the event; the returned error
// only adds detail for the runner's error handler.
func (t *GenerationTask) Execute(ctx context.Context) error {
	start := time.Now()
	cards, reqErr := t.requester.Generate(ctx, t.request)

	var (
		event *events.Event
		err   error
	)
	if reqErr != nil {
		t.logger.WarnContext(ctx, "generation request failed",
			"error", redact.Error(reqErr),
			"duration_ms", time.Since(start).Milliseconds())
		event, err = events.NewEvent(events.TypeGenerationFailed, events.GenerationFailed{
			Token:  t.token,
			Kind:   FailureKind(reqErr),
			Reason: redact.Error(reqErr),
		})
	} else {
		t.logger.InfoContext(ctx, "generation request completed",
			"card_count", len(cards),
			"duration_ms", time.Since(start).Milliseconds())
		event, err = events.NewEvent(events.TypeGenerationCompleted, events.GenerationCompleted{
			Token: t.token,
			Cards: cards,
		})
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEventNotDelivered, err)
	}

	if err := t.emitter.EmitEvent(ctx, event); err != nil {
		return fmt.Errorf("%w: %v", ErrEventNotDelivered, err)
	}

	if reqErr != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, reqErr)
	}
	return nil
}

// FailureKind classifies a request error for a GenerationFailed event.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnexpectedStatus):
		return events.FailureStatus
	case errors.Is(err, domain.ErrMalformedResponse):
		return events.FailureMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return events.FailureCancelled
	default:
		return events.FailureTransport
	}
}
