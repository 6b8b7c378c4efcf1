// Package config loads agent configuration from the environment.
//
// A .env file in the working directory is honored (and gitignored) so
// API keys never end up in source control.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider names accepted in DEFAULT_LLM_PROVIDER.
const (
	ProviderOllama    = "ollama"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds the agent configuration loaded from environment variables.
type Config struct {
	// Provider selects the LLM backend: ollama (default), gemini,
	// anthropic, or openai.
	Provider string

	// Ollama
	OllamaBaseURL string
	OllamaModel   string

	// Gemini
	GoogleAPIKey string
	GeminiModel  string

	// Anthropic
	AnthropicAPIKey string
	AnthropicModel  string

	// OpenAI
	OpenAIAPIKey string
	OpenAIModel  string

	// Agent loop
	MaxSteps int
	Timeout  time.Duration
}

// Load reads configuration from environment variables.
// It loads a .env file first if one is present (silent if not found).
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Provider:        strings.ToLower(getEnvOrDefault("DEFAULT_LLM_PROVIDER", ProviderOllama)),
		OllamaBaseURL:   getEnvOrDefault("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:     getEnvOrDefault("OLLAMA_MODEL", "llama2"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-pro"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		MaxSteps:        getEnvIntOrDefault("AGENT_MAX_STEPS", 10),
		Timeout:         getEnvDurationOrDefault("AGENT_TIMEOUT", 2*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present for the
// selected provider.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOllama:
		if c.OllamaBaseURL == "" {
			return fmt.Errorf("OLLAMA_BASE_URL is required for ollama provider")
		}
	case ProviderGemini:
		if c.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for gemini provider")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be ollama, gemini, anthropic, or openai)", c.Provider)
	}

	if c.MaxSteps <= 0 {
		return fmt.Errorf("AGENT_MAX_STEPS must be positive, got %d", c.MaxSteps)
	}

	return nil
}

// Model returns the model name configured for the selected provider.
func (c *Config) Model() string {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiModel
	case ProviderAnthropic:
		return c.AnthropicModel
	case ProviderOpenAI:
		return c.OpenAIModel
	default:
		return c.OllamaModel
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
