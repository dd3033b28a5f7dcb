// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating flashcards from user content.
//
// This package is an infrastructure adapter: it renders the shared prompt,
// calls the Gemini models endpoint through the google.golang.org/genai client,
// and hands the text of the first candidate to generation.ParseCards.
// Safety blocks are reported as generation.ErrContentBlocked; malformed or
// empty output as generation.ErrInvalidResponse. There is no retry.
package gemini
