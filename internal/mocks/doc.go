// Package mocks provides shared test doubles for the generation boundary.
//
// MockGenerator stands in for an LLM adapter (generation.Generator) and
// MockRequester stands in for the HTTP client the web front end uses to
// reach the API (task.Requester). Both take an optional function field that
// overrides the canned response and both record their calls:
//
//	gen := &mocks.MockGenerator{
//	    GenerateCardsFn: func(ctx context.Context, content string, n int) (domain.CardSet, error) {
//	        return domain.CardSet{{Question: "Q", Answer: "A"}}, nil
//	    },
//	}
//
// Call counts are safe to read while the mock is in use from another
// goroutine, which the coordinator and runner tests rely on.
package mocks
