package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/flashcard-generator/internal/config"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// mockModels records the last request and returns a canned response.
type mockModels struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
}

func (m *mockModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	m.lastModel = model
	m.lastContents = contents
	m.lastConfig = cfg
	return m.GenerateContentFn(ctx, model, contents, cfg)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		Provider:     config.ProviderGemini,
		GeminiAPIKey: "test-key",
		ModelName:    config.DefaultGeminiModel,
		Temperature:  0.7,
	}
}

func newTestGenerator(t *testing.T, m *mockModels) *Generator {
	t.Helper()
	g, err := newGenerator(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig(), m)
	require.NoError(t, err)
	return g
}

func TestNewGenerator_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewGenerator(context.Background(), logger, config.LLMConfig{ModelName: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = newGenerator(nil, testConfig(), &mockModels{})
	assert.Error(t, err)

	cfg := testConfig()
	cfg.ModelName = ""
	_, err = newGenerator(logger, cfg, &mockModels{})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg = testConfig()
	cfg.PromptTemplatePath = "/nonexistent/prompt.tmpl"
	_, err = newGenerator(logger, cfg, &mockModels{})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestGenerateCards_Success(t *testing.T) {
	m := &mockModels{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse("```json\n[{\"question\":\"2+2\",\"answer\":\"4\"}]\n```"), nil
		},
	}
	g := newTestGenerator(t, m)

	cards, err := g.GenerateCards(context.Background(), "basic arithmetic", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CardSet{{Question: "2+2", Answer: "4"}}, cards)

	assert.Equal(t, config.DefaultGeminiModel, m.lastModel)
	require.Len(t, m.lastContents, 1)
	require.Len(t, m.lastContents[0].Parts, 1)
	assert.Contains(t, m.lastContents[0].Parts[0].Text, "into 1 high-quality flashcard")
	assert.Contains(t, m.lastContents[0].Parts[0].Text, "basic arithmetic")
	require.NotNil(t, m.lastConfig.Temperature)
	assert.InDelta(t, 0.7, *m.lastConfig.Temperature, 1e-6)
	assert.Equal(t, generation.SystemInstruction, m.lastConfig.SystemInstruction.Parts[0].Text)
}

func TestGenerateCards_Failures(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		err     error
		wantErr error
	}{
		{name: "transport error", err: errors.New("connection reset"), wantErr: generation.ErrGenerationFailed},
		{name: "nil response", wantErr: generation.ErrInvalidResponse},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: generation.ErrInvalidResponse},
		{
			name: "safety stop",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
			}}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "prompt blocked",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "nil content",
			resp:    &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantErr: generation.ErrInvalidResponse,
		},
		{name: "not json", resp: textResponse("Sure! Here are some cards."), wantErr: generation.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, &mockModels{
				GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return tt.resp, tt.err
				},
			})

			cards, err := g.GenerateCards(context.Background(), "content", 3)
			assert.Nil(t, cards)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateCards_EmptyContentSkipsCall(t *testing.T) {
	m := &mockModels{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			t.Fatal("API must not be called for empty content")
			return nil, nil
		},
	}
	g := newTestGenerator(t, m)

	_, err := g.GenerateCards(context.Background(), "", 3)
	assert.ErrorIs(t, err, generation.ErrEmptyContent)
}
