// Package service contains the application use cases behind the generation
// API. It sits between the HTTP handlers in internal/api and the LLM adapters
// behind generation.Generator.
//
// GenerationService validates the incoming request, calls the configured
// generator, and wraps failures in a ServiceError that records the
// operation. Callers classify failures with errors.Is against the
// sentinels in internal/generation and internal/domain.
package service
