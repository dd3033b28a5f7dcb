package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/redact"
)

// GeneratePath is the API path for card generation.
const GeneratePath = "/generate-cards"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = domain.ErrUnexpectedStatus

	// ErrMalformedResponse is returned when the body isn't a card set.
	ErrMalformedResponse = domain.ErrMalformedResponse
)

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// Client issues generation requests against the API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New returns a Client for cfg. A nil httpClient gets a default one built
// from cfg.Timeout.
func New(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		logger:     logger.With("component", "generation_client"),
	}, nil
}

// Generate posts req to the generation endpoint and returns the cards.
// Exactly one request is made.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (domain.CardSet, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GeneratePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "generation request failed", "error", redact.Error(err))
		return nil, fmt.Errorf("post %s: %w", GeneratePath, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.DebugContext(ctx, "generation response received",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out struct {
		Cards *domain.CardSet `json:"cards"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.Cards == nil {
		return nil, fmt.Errorf("%w: missing cards", ErrMalformedResponse)
	}
	return *out.Cards, nil
}
