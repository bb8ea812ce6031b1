package app

import (
	"log/slog"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/adcopy-backend/internal/config"
)

// NewLLMRouter registers a client for every provider with an API key.
// Models of unregistered providers fail at call time.
func NewLLMRouter(cfg config.AIConfig, logger *slog.Logger) *llm.Router {
	clients := make(map[llm.Provider]llm.Client, 3)

	if cfg.OpenAI.APIKey != "" {
		clients[llm.ProviderOpenAI] = openai.New(openai.Config{
			APIKey:           cfg.OpenAI.APIKey,
			BaseURL:          cfg.OpenAI.BaseURL,
			MaxTokens:        cfg.MaxTokens,
			Temperature:      cfg.Temperature,
			TopP:             cfg.TopP,
			FrequencyPenalty: cfg.FrequencyPenalty,
			PresencePenalty:  cfg.PresencePenalty,
		}, logger)
	}

	if cfg.Gemini.APIKey != "" {
		clients[llm.ProviderGemini] = gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Timeout,
		}, logger)
	}

	if cfg.Anthropic.APIKey != "" {
		clients[llm.ProviderAnthropic] = anthropic.New(anthropic.Config{
			APIKey:      cfg.Anthropic.APIKey,
			BaseURL:     cfg.Anthropic.BaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		}, logger)
	}

	if len(clients) == 0 {
		logger.Warn("no AI provider configured, generation requests will fail")
	}

	return llm.NewRouter(logger, clients, cfg.Timeout)
}
