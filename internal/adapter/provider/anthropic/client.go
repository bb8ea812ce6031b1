// Package anthropic implements llm.Client for claude-* models.
package anthropic

import (
	"context"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
)

// Config holds credentials and sampling parameters.
type Config struct {
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// Client sends one Messages request per Generate call.
type Client struct {
	api sdk.Client
	cfg Config
	log *slog.Logger
}

// New creates a Client with SDK retries disabled.
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
		log: logger.With("adapter", "anthropic"),
	}
}

// Generate sends p.System as the system prompt and p.User as the only user
// turn, and returns the first text block.
func (c *Client) Generate(ctx context.Context, p llm.Prompt, model string) (string, error) {
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(c.cfg.MaxTokens),
		System:    []sdk.TextBlockParam{{Text: p.System}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(p.User)),
		},
		Temperature: sdk.Float(c.cfg.Temperature),
	})
	if err != nil {
		return "", llm.TransportError(llm.ProviderAnthropic, model, err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = strings.TrimSpace(block.Text)
			break
		}
	}
	if text == "" {
		return "", llm.NoContentError(llm.ProviderAnthropic, model)
	}

	c.log.DebugContext(ctx, "anthropic message",
		slog.String("model", model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}
