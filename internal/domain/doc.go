// Package domain defines the core types shared by every layer of the
// flashcard generator: the generation request sent to the remote service,
// the question/answer cards it returns, and the ordered set in which those
// cards are displayed and exported.
//
// Types in this package carry no behavior beyond validation and copying.
// They are produced by the API layer (from JSON), by the LLM generators
// (from model output) and by the HTTP client (from the API response).
package domain
