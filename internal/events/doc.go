// Package events provides types and interfaces for an event-driven architecture.
//
// Generation requests run as asynchronous tasks. When one finishes, its outcome
// is published as an Event and folded into view state by whichever handler is
// registered, so the task never touches that state directly.
//
// The primary components are:
// - Event: an immutable record of something that happened, with a JSON payload
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
