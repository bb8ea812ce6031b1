package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from CONFIG_PATH (default ./config.yaml) and the
// environment. ENV overrides YAML, YAML overrides env-default tags. A missing
// default file is not an error; a missing explicit CONFIG_PATH is.
func Load() (*Config, error) {
	path, explicit := resolvePath()

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return LoadFile(path)
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads path and then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func resolvePath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultPath, false
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
