package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openaisdk "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/phrazzld/flashcard-generator/internal/config"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/generation"
)

// chatCompletions is the subset of the SDK's ChatCompletionService used here.
type chatCompletions interface {
	New(
		ctx context.Context,
		body openaisdk.ChatCompletionNewParams,
		opts ...option.RequestOption,
	) (*openaisdk.ChatCompletion, error)
}

// Generator implements generation.Generator using OpenAI chat completions.
type Generator struct {
	logger      *slog.Logger
	prompt      *generation.Prompt
	completions chatCompletions
	model       string
	temperature float64
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from the LLM configuration.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		// Retries are left to the user.
		option.WithMaxRetries(0),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.OpenAIBaseURL), "/"); base != "" {
		opts = append(opts, option.WithBaseURL(base+"/"))
	}

	client := openaisdk.NewClient(opts...)
	return newGenerator(logger, cfg, &client.Chat.Completions)
}

func newGenerator(logger *slog.Logger, cfg config.LLMConfig, completions chatCompletions) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	prompt, err := generation.LoadPrompt(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	return &Generator{
		logger:      logger.With("component", "openai_generator"),
		prompt:      prompt,
		completions: completions,
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateCards implements generation.Generator.
func (g *Generator) GenerateCards(ctx context.Context, content string, numCards int) (domain.CardSet, error) {
	prompt, err := g.prompt.Render(content, numCards)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "calling OpenAI chat completions",
		"model", g.model,
		"prompt_length", len(prompt),
		"num_cards", numCards)

	resp, err := g.completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(g.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(generation.SystemInstruction),
			openaisdk.UserMessage(prompt),
		},
		Temperature: openaisdk.Float(g.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai request failed: %v", generation.ErrGenerationFailed, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == "content_filter" {
		return nil, fmt.Errorf("%w: completion stopped by content filter", generation.ErrContentBlocked)
	}
	if choice.Message.Refusal != "" {
		return nil, fmt.Errorf("%w: model refused: %s", generation.ErrContentBlocked, choice.Message.Refusal)
	}

	cards, err := generation.ParseCards(choice.Message.Content)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "OpenAI call successful",
		"model", g.model,
		"card_count", len(cards))
	return cards, nil
}
