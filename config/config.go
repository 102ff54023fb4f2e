// Package config loads satchat configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jredh-dev/satchat/internal/llm"
)

// Config holds service configuration.
type Config struct {
	Port         string        `env:"PORT" envDefault:"5000"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"2m"`
	SamplePrompt string        `env:"SAMPLE_PROMPT" envDefault:"Say something cool about satellites"`
	LLM          LLMConfig
}

// LLMConfig selects the generation backend.
type LLMConfig struct {
	Provider      string `env:"LLM_PROVIDER" envDefault:"gemini"`
	Model         string `env:"LLM_MODEL"` // empty picks the provider's default
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
}

// APIKey returns the key for the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// ModelName returns the configured model, or the selected provider's default.
func (c LLMConfig) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	return llm.DefaultModelFor(c.Provider)
}

// BaseURL returns the API root override for the selected provider, if any.
func (c LLMConfig) BaseURL() string {
	if c.Provider == "openai" {
		return c.OpenAIBaseURL
	}
	return ""
}

// Load reads a .env file from the working directory if one exists, then
// parses the environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate reports configuration that would fail on the first request.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("LLM_PROVIDER must be gemini or openai, got %q", c.LLM.Provider)
	}
	if c.LLM.APIKey() == "" {
		return fmt.Errorf("no API key set for provider %q", c.LLM.Provider)
	}
	if c.WriteTimeout <= 0 {
		return errors.New("HTTP_WRITE_TIMEOUT must be positive")
	}
	return nil
}
