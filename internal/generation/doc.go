// Package generation provides interfaces and shared helpers for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini, OpenAI), allowing the application
// to generate flashcards from user content without coupling to a specific
// external service.
//
// The Generator interface is implemented by the adapters under
// internal/platform. Those adapters share the prompt template and the
// model-output parser defined here.
package generation
