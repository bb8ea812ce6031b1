// Package llm defines the provider-agnostic text generation contract and
// routes model ids to concrete provider clients.
package llm

import (
	"context"
	"strings"
)

// Prompt is a system/user message pair sent to a provider.
type Prompt struct {
	System string
	User   string
}

// Client generates free text for a prompt. Implementations make exactly one
// upstream call and do not retry.
type Client interface {
	Generate(ctx context.Context, p Prompt, model string) (string, error)
}

// Provider names an upstream text generation service.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

func (p Provider) String() string { return string(p) }

// DefaultModel is used for empty or unknown model ids.
const DefaultModel = "gpt-4o"

var knownModels = map[string]Provider{
	"gpt-4o":              ProviderOpenAI,
	"gpt-4-turbo-preview": ProviderOpenAI,
	"gpt-4":               ProviderOpenAI,
	"gpt-3.5-turbo":       ProviderOpenAI,
	"gemini-pro":          ProviderGemini,
	"gemini-pro-vision":   ProviderGemini,
}

// IsKnown reports whether model is served as requested, without falling back
// to DefaultModel.
func IsKnown(model string) bool {
	_, ok := knownModels[model]
	return ok || strings.HasPrefix(model, "claude-")
}

// Resolve maps a requested model id to the provider serving it and the id to
// send upstream. Unknown ids fall back to DefaultModel on OpenAI.
func Resolve(model string) (Provider, string) {
	if p, ok := knownModels[model]; ok {
		return p, model
	}
	if strings.HasPrefix(model, "claude-") {
		return ProviderAnthropic, model
	}
	return ProviderOpenAI, DefaultModel
}
