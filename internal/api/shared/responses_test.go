package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/flashcard-generator/internal/platform/logger"
	"github.com/phrazzld/flashcard-generator/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "successful response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"message": "success", "data": 123},
			expectedBody: `{"message":"success","data":123}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-123")
	req := httptest.NewRequest(http.MethodPost, "/generate-cards", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request format", resp.Error)
	assert.Equal(t, "trace-123", resp.TraceID)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "bad gateway logs at error", status: http.StatusBadGateway, wantLevel: "ERROR"},
		{name: "rate limit logs at warn", status: http.StatusTooManyRequests, wantLevel: "WARN"},
		{name: "client error logs at debug", status: http.StatusBadRequest, wantLevel: "DEBUG"},
		{
			name:      "elevated client error logs at warn",
			status:    http.StatusUnprocessableEntity,
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			capture := testutils.NewLogCapture()
			ctx := logger.WithLogger(context.Background(), capture.Logger())
			req := httptest.NewRequest(http.MethodPost, "/generate-cards", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			err := errors.New("openai: 401 invalid key sk-abcdefghijklmnopqrstuvwxyz")
			RespondWithErrorAndLog(w, req, tc.status, "Failed to generate flashcards", err, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			assert.NotContains(t, w.Body.String(), "sk-abcdefghijklmnopqrstuvwxyz")
			assert.Contains(t, w.Body.String(), "Failed to generate flashcards")

			entries := capture.Entries()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tc.wantLevel, entry.Level())
			assert.NotContains(t, entry["error"], "sk-abcdefghijklmnopqrstuvwxyz")
			assert.Equal(t, "*errors.errorString", entry["error_type"])
		})
	}
}
