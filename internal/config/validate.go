package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.Redis.RedisEnabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be > 0 (got %v)", c.Redis.LockTTL)
	}

	return nil
}

func (a *AIConfig) validate() error {
	if len(a.ConfiguredProviders()) == 0 {
		return fmt.Errorf("at least one provider api key must be configured (OpenAI, Gemini or Anthropic)")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", a.Temperature)
	}
	if a.TopP <= 0 || a.TopP > 1 {
		return fmt.Errorf("top_p must be in (0, 1] (got %v)", a.TopP)
	}
	if a.FrequencyPenalty < -2 || a.FrequencyPenalty > 2 {
		return fmt.Errorf("frequency_penalty must be in [-2, 2] (got %v)", a.FrequencyPenalty)
	}
	if a.PresencePenalty < -2 || a.PresencePenalty > 2 {
		return fmt.Errorf("presence_penalty must be in [-2, 2] (got %v)", a.PresencePenalty)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.HistoryContextSize < 0 {
		return fmt.Errorf("history_context_size must be >= 0 (got %d)", g.HistoryContextSize)
	}
	if g.PromptExamples < 0 {
		return fmt.Errorf("prompt_examples must be >= 0 (got %d)", g.PromptExamples)
	}
	if g.HistoryKeepLast <= 0 {
		return fmt.Errorf("history_keep_last must be > 0 (got %d)", g.HistoryKeepLast)
	}
	if g.MaxVariations <= 0 {
		return fmt.Errorf("max_variations must be > 0 (got %d)", g.MaxVariations)
	}
	return nil
}
