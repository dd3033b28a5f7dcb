package testutils

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCapture(t *testing.T) {
	capture := NewLogCapture()
	l := capture.Logger().With("trace_id", "abc").WithGroup("req")

	l.Warn("slow request", "path", "/generate-cards")
	l.Log(context.Background(), slog.LevelDebug, "done", slog.Group("timing", slog.Int("ms", 12)))

	entries := capture.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level())
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.Equal(t, "/generate-cards", entries[0]["req.path"])
	assert.Equal(t, int64(12), entries[1]["req.timing.ms"])

	e, ok := capture.Find("done")
	require.True(t, ok)
	assert.Equal(t, "DEBUG", e.Level())

	capture.Clear()
	assert.Empty(t, capture.Entries())
}

func TestPostJSONAndAssertErrorResponse(t *testing.T) {
	server := CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Content cannot be empty","trace_id":"t-1"}`))
	}))

	resp := PostJSON(t, server, "/generate-cards", map[string]any{"content": ""})
	traceID := AssertErrorResponse(t, resp, http.StatusBadRequest, "cannot be empty")
	assert.Equal(t, "t-1", traceID)
}
