// Package openai implements llm.Client on top of the official OpenAI Go SDK.
package openai

import (
	"context"
	"log/slog"
	"strings"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
)

// Config holds the credentials and sampling parameters of the client.
type Config struct {
	APIKey           string
	BaseURL          string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// Client sends one chat completion per Generate call.
type Client struct {
	api sdk.Client
	cfg Config
	log *slog.Logger
}

// New creates a Client. SDK retries are disabled; the caller owns the deadline.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api: sdk.NewClient(opts...),
		cfg: cfg,
		log: logger.With("adapter", "openai"),
	}
}

// Generate sends p as a system and a user message and returns the trimmed
// text of the first choice.
func (c *Client) Generate(ctx context.Context, p llm.Prompt, model string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model: sdk.ChatModel(model),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.SystemMessage(p.System),
			sdk.UserMessage(p.User),
		},
		MaxTokens:        sdk.Int(int64(c.cfg.MaxTokens)),
		Temperature:      sdk.Float(c.cfg.Temperature),
		TopP:             sdk.Float(c.cfg.TopP),
		FrequencyPenalty: sdk.Float(c.cfg.FrequencyPenalty),
		PresencePenalty:  sdk.Float(c.cfg.PresencePenalty),
	})
	if err != nil {
		return "", llm.TransportError(llm.ProviderOpenAI, model, err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.NoContentError(llm.ProviderOpenAI, model)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", llm.NoContentError(llm.ProviderOpenAI, model)
	}

	c.log.DebugContext(ctx, "openai completion",
		slog.String("model", model),
		slog.Int64("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}
