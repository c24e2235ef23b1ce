package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds file-based configuration. All fields are optional;
// environment variables override file values for credentials.
type Config struct {
	// Addr is the API server listen address.
	Addr string `yaml:"addr"`

	// Provider selects the profile backend: "gemini" or "openai".
	Provider string `yaml:"provider"`

	// Model overrides the provider's default model. Only used by the
	// openai provider.
	Model string `yaml:"model"`

	// Extractor selects the content extraction backend used for model
	// context: "trafilatura" (default) or "readability".
	Extractor string `yaml:"extractor"`

	GeminiAPIKey  string `yaml:"geminiApiKey"`
	OpenAIAPIKey  string `yaml:"openaiApiKey"`
	OpenAIBaseURL string `yaml:"openaiBaseUrl"`

	// RateLimit is the per-host asset fetch limit in requests per second.
	// Zero uses the gateway default.
	RateLimit float64 `yaml:"rateLimit"`
}

// DefaultConfigPath returns the config file location, honoring the
// BRANDSIGHT_CONFIG environment variable.
func DefaultConfigPath() string {
	if path := os.Getenv("BRANDSIGHT_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "brandsight.yaml"
	}
	return filepath.Join(home, ".brandsight", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields
// defaults; credentials are overridden by GEMINI_API_KEY and
// OPENAI_API_KEY when set.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Provider: "gemini",
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIAPIKey = key
	}
	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}

	return cfg, nil
}
