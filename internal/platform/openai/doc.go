// Package openai provides an implementation of the generation.Generator
// interface backed by the OpenAI chat completions API
// (github.com/openai/openai-go/v2). It sends the shared prompt with the
// shared system instruction and parses the first choice's message with
// generation.ParseCards.
package openai
