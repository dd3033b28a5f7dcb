package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/flashcard-generator/internal/redact"
)

// ErrNoHandlers is returned by EmitEvent when nobody is registered to
// receive the event. A generation outcome emitted with no handler would be
// lost, so the emitter reports it instead of dropping it quietly.
var ErrNoHandlers = errors.New("no event handlers registered")

// InMemoryEventEmitter delivers generation outcomes to in-process handlers,
// synchronously and in registration order. The coordinator registers itself
// here, and generation tasks emit through it from the worker goroutine.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventEmitter returns an emitter with no handlers. A nil logger
// uses slog.Default.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// RegisterHandler adds handler to the delivery list.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

// HandlerCount reports how many handlers are registered.
func (e *InMemoryEventEmitter) HandlerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers)
}

// EmitEvent hands event to every registered handler. A failing handler
// doesn't stop delivery to the rest; all handler errors are joined into the
// returned error.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	if event == nil {
		return fmt.Errorf("emit: nil event")
	}

	e.mu.RLock()
	handlers := append([]EventHandler(nil), e.handlers...)
	e.mu.RUnlock()

	log := e.logger.With("event_id", event.ID, "event_type", event.Type)
	if len(handlers) == 0 {
		log.WarnContext(ctx, "generation event has no receiver")
		return fmt.Errorf("emit %s: %w", event.Type, ErrNoHandlers)
	}

	var errs []error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			log.ErrorContext(ctx, "event handler failed",
				"handler_index", i,
				"error", redact.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
