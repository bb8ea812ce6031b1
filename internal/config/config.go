package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	AI         AIConfig         `yaml:"ai"`
	Generation GenerationConfig `yaml:"generation"`
	Redis      RedisConfig      `yaml:"redis"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings. WriteTimeout must outlast a
// multi-channel generation, which is bounded by AI.Timeout per channel.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"15m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
	// GenerationRateLimit caps generation calls per user per minute. 0 disables it.
	GenerationRateLimit int `yaml:"generation_rate_limit" env:"SERVER_GENERATION_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings. Tokens are issued elsewhere;
// this service only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"adcopy"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// AIConfig holds provider credentials and sampling parameters.
type AIConfig struct {
	DefaultModel     string          `yaml:"default_model"     env:"AI_DEFAULT_MODEL"     env-default:"gpt-4o"`
	Timeout          time.Duration   `yaml:"timeout"           env:"AI_TIMEOUT"           env-default:"2m"`
	MaxTokens        int             `yaml:"max_tokens"        env:"AI_MAX_TOKENS"        env-default:"2000"`
	Temperature      float64         `yaml:"temperature"       env:"AI_TEMPERATURE"       env-default:"0.7"`
	TopP             float64         `yaml:"top_p"             env:"AI_TOP_P"             env-default:"0.9"`
	FrequencyPenalty float64         `yaml:"frequency_penalty" env:"AI_FREQUENCY_PENALTY" env-default:"0.1"`
	PresencePenalty  float64         `yaml:"presence_penalty"  env:"AI_PRESENCE_PENALTY"  env-default:"0.1"`
	OpenAI           OpenAIConfig    `yaml:"openai"`
	Gemini           GeminiConfig    `yaml:"gemini"`
	Anthropic        AnthropicConfig `yaml:"anthropic"`
}

// OpenAIConfig holds OpenAI credentials.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"OPENAI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// GeminiConfig holds Gemini REST credentials.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"  env:"GEMINI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta/models"`
	Model   string `yaml:"model"    env:"GEMINI_MODEL"    env-default:"gemini-2.0-flash"`
}

// AnthropicConfig holds Anthropic credentials.
type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"  env:"ANTHROPIC_API_KEY"`
	BaseURL string `yaml:"base_url" env:"ANTHROPIC_BASE_URL"`
}

// GenerationConfig holds orchestration parameters.
type GenerationConfig struct {
	HistoryContextSize int `yaml:"history_context_size" env:"GENERATION_HISTORY_CONTEXT_SIZE" env-default:"10"`
	PromptExamples     int `yaml:"prompt_examples"      env:"GENERATION_PROMPT_EXAMPLES"      env-default:"3"`
	HistoryKeepLast    int `yaml:"history_keep_last"    env:"GENERATION_HISTORY_KEEP_LAST"    env-default:"50"`
	MaxVariations      int `yaml:"max_variations"       env:"GENERATION_MAX_VARIATIONS"       env-default:"3"`
}

// RedisConfig holds the optional Redis connection used for archival locks.
// An empty Addr disables Redis; locks then stay in-process.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	LockTTL  time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ConfiguredProviders returns the names of providers that have credentials.
func (c AIConfig) ConfiguredProviders() []string {
	var providers []string
	if c.OpenAI.APIKey != "" {
		providers = append(providers, "openai")
	}
	if c.Gemini.APIKey != "" {
		providers = append(providers, "gemini")
	}
	if c.Anthropic.APIKey != "" {
		providers = append(providers, "anthropic")
	}
	return providers
}

// RedisEnabled reports whether a Redis address is configured.
func (c RedisConfig) RedisEnabled() bool {
	return c.Addr != ""
}
