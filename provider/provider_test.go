package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/provider/mock"
)

func baseConfig(provider string) *config.Config {
	return &config.Config{
		Provider:      provider,
		OllamaBaseURL: "http://localhost:11434",
		OllamaModel:   "llama2",
		MaxSteps:      10,
		Timeout:       time.Minute,
	}
}

func TestNew(t *testing.T) {
	t.Run("ollama needs no API key", func(t *testing.T) {
		p, err := New(context.Background(), baseConfig(config.ProviderOllama))
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("gemini requires API key", func(t *testing.T) {
		_, err := New(context.Background(), baseConfig(config.ProviderGemini))
		assert.Error(t, err)
	})

	t.Run("anthropic with key", func(t *testing.T) {
		cfg := baseConfig(config.ProviderAnthropic)
		cfg.AnthropicAPIKey = "test-key"
		p, err := New(context.Background(), cfg)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("openai with key", func(t *testing.T) {
		cfg := baseConfig(config.ProviderOpenAI)
		cfg.OpenAIAPIKey = "test-key"
		p, err := New(context.Background(), cfg)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		_, err := New(context.Background(), baseConfig("cohere"))
		assert.Error(t, err)
	})
}

func TestNewWithFallback(t *testing.T) {
	t.Run("falls back to mock on invalid config", func(t *testing.T) {
		p := NewWithFallback(context.Background(), baseConfig(config.ProviderGemini))
		require.NotNil(t, p)
		_, isMock := p.(*mock.Client)
		assert.True(t, isMock)
	})

	t.Run("keeps real provider when config is valid", func(t *testing.T) {
		p := NewWithFallback(context.Background(), baseConfig(config.ProviderOllama))
		require.NotNil(t, p)
		_, isMock := p.(*mock.Client)
		assert.False(t, isMock)
	})
}
