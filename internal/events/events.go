package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// Event types published by the generation coordinator.
const (
	TypeGenerationCompleted = "generation.completed"
	TypeGenerationFailed    = "generation.failed"
)

// Event is a single notification with a typed, JSON-encoded payload.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type names the payload shape, e.g. TypeGenerationCompleted
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// GenerationCompleted is the payload of a TypeGenerationCompleted event.
type GenerationCompleted struct {
	Token uint64         `json:"token"`
	Cards domain.CardSet `json:"cards"`
}

// Failure kinds carried by GenerationFailed.
const (
	FailureTransport = "transport"
	FailureStatus    = "unexpected_status"
	FailureMalformed = "malformed_response"
	FailureCancelled = "cancelled"
)

// GenerationFailed is the payload of a TypeGenerationFailed event.
// Kind classifies the failure so receivers can rebuild a matching error;
// Reason is redacted diagnostic text and never shown to users.
type GenerationFailed struct {
	Token  uint64 `json:"token"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f.
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows tasks to publish outcomes without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *Event) error
}
