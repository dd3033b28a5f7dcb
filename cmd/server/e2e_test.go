package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/phrazzld/flashcard-generator/internal/client"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/mocks"
	"github.com/phrazzld/flashcard-generator/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAgainstServer(t *testing.T) {
	gen := mocks.NewMockGeneratorWithCards(domain.CardSet{
		{Question: "What is mitosis?", Answer: "Cell division"},
		{Question: "What is meiosis?", Answer: "Reductive division"},
	})
	server := testutils.CreateTestServer(t, newTestApp(t, gen).setupRouter())

	c, err := client.New(client.Config{BaseURL: server.URL}, server.Client(), nil)
	require.NoError(t, err)

	cards, err := c.Generate(context.Background(), domain.GenerationRequest{Content: "cells", NumCards: 2})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Cell division", cards[0].Answer)
	assert.Equal(t, []mocks.GenerateCardsCall{{Content: "cells", NumCards: 2}}, gen.Calls())
}

func TestClientAgainstServer_UpstreamFailure(t *testing.T) {
	server := testutils.CreateTestServer(t, newTestApp(t, mocks.MockGeneratorThatFails()).setupRouter())

	c, err := client.New(client.Config{BaseURL: server.URL}, server.Client(), nil)
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), domain.GenerationRequest{Content: "cells", NumCards: 2})
	assert.ErrorIs(t, err, client.ErrUnexpectedStatus)
}

func TestServer_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		gen     *mocks.MockGenerator
		body    any
		status  int
		message string
	}{
		{
			name:    "malformed json",
			gen:     &mocks.MockGenerator{},
			body:    `{"content":`,
			status:  http.StatusBadRequest,
			message: "Invalid request format",
		},
		{
			name:    "num_cards out of range",
			gen:     &mocks.MockGenerator{},
			body:    map[string]any{"content": "cells", "num_cards": 0},
			status:  http.StatusBadRequest,
			message: "num_cards",
		},
		{
			name:    "content blocked",
			gen:     mocks.MockGeneratorWithContentBlocked(),
			body:    map[string]any{"content": "cells", "num_cards": 2},
			status:  http.StatusUnprocessableEntity,
			message: "rejected",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := testutils.CreateTestServer(t, newTestApp(t, tc.gen).setupRouter())

			resp := testutils.PostJSON(t, server, "/generate-cards", tc.body)
			traceID := testutils.AssertErrorResponse(t, resp, tc.status, tc.message)
			assert.Equal(t, resp.Header.Get("X-Trace-ID"), traceID)
		})
	}
}
