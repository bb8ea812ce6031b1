// Package gemini implements llm.Client against the Gemini generateContent
// REST endpoint.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel   = "gemini-2.0-flash"
)

// Config holds the endpoint and credentials. Model is the concrete model
// every gemini-* id is served by.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls generateContent once per Generate call.
type Client struct {
	http  *resty.Client
	model string
	log   *slog.Logger
}

// New creates a Client. Empty BaseURL and Model take the public defaults.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-goog-api-key", cfg.APIKey)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:  httpClient,
		model: model,
		log:   logger.With("adapter", "gemini"),
	}
}

// Generate joins the system and user prompts with a blank line and returns
// the trimmed text of the first candidate.
func (c *Client) Generate(ctx context.Context, p llm.Prompt, model string) (string, error) {
	body := generateRequest{
		Contents: []apiContent{{Parts: []apiPart{{Text: p.System + "\n\n" + p.User}}}},
	}

	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/" + c.model + ":generateContent")
	if err != nil {
		return "", llm.TransportError(llm.ProviderGemini, c.model, err)
	}
	if resp.IsError() {
		return "", llm.TransportError(llm.ProviderGemini, c.model,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), truncate(resp.String(), 200)))
	}

	text := strings.TrimSpace(out.firstText())
	if text == "" {
		return "", llm.NoContentError(llm.ProviderGemini, c.model)
	}

	c.log.DebugContext(ctx, "gemini response",
		slog.String("requested_model", model),
		slog.String("model", c.model),
		slog.Int("status", resp.StatusCode()),
	)

	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
