package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/flashcard-generator/internal/config"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{LogLevel: "info"},
		Web: config.WebConfig{
			Port:                 0,
			APIBaseURL:           "http://localhost:8000",
			NoticeTimeoutSeconds: 6,
		},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplicationWithRequester(testConfig(), l, &mocks.MockRequester{Cards: domain.CardSet{{Question: "Q", Answer: "A"}}})
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(testConfig(), l)
	require.NoError(t, err)
	require.NoError(t, app.coordinator.Close(context.Background()))

	cfg := testConfig()
	cfg.Web.APIBaseURL = ""
	_, err = newApplication(cfg, l)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	app := newTestApp(t)
	defer func() { _ = app.coordinator.Close(context.Background()) }()
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Flashcard Generator")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, err := app.coordinator.Submit("notes", 1)
	assert.Error(t, err)
}
