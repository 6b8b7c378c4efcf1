package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No provider set: ollama defaults apply and no API key is needed.
	t.Setenv("DEFAULT_LLM_PROVIDER", "")
	t.Setenv("OLLAMA_BASE_URL", "")
	t.Setenv("OLLAMA_MODEL", "")
	t.Setenv("AGENT_MAX_STEPS", "")
	t.Setenv("AGENT_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama2", cfg.OllamaModel)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, 10, cfg.MaxSteps)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoadProviderSelection(t *testing.T) {
	t.Run("gemini requires GOOGLE_API_KEY", func(t *testing.T) {
		t.Setenv("DEFAULT_LLM_PROVIDER", "gemini")
		t.Setenv("GOOGLE_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	})

	t.Run("gemini with key succeeds", func(t *testing.T) {
		t.Setenv("DEFAULT_LLM_PROVIDER", "gemini")
		t.Setenv("GOOGLE_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ProviderGemini, cfg.Provider)
		assert.Equal(t, "gemini-1.5-flash", cfg.Model())
	})

	t.Run("provider name is case-insensitive", func(t *testing.T) {
		t.Setenv("DEFAULT_LLM_PROVIDER", "Ollama")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ProviderOllama, cfg.Provider)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		t.Setenv("DEFAULT_LLM_PROVIDER", "cohere")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:11434")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("AGENT_MAX_STEPS", "3")
	t.Setenv("AGENT_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://ollama.internal:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "mistral", cfg.OllamaModel)
	assert.Equal(t, "mistral", cfg.Model())
	assert.Equal(t, 3, cfg.MaxSteps)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestValidateMaxSteps(t *testing.T) {
	cfg := &Config{Provider: ProviderOllama, OllamaBaseURL: "http://localhost:11434", MaxSteps: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_MAX_STEPS")
}

func TestModelPerProvider(t *testing.T) {
	cfg := &Config{
		Provider:       ProviderAnthropic,
		AnthropicModel: "claude-sonnet-4-20250514",
		OllamaModel:    "llama2",
	}
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Model())

	cfg.Provider = ProviderOllama
	assert.Equal(t, "llama2", cfg.Model())
}
