// Package provider constructs the configured ai.ChatProvider.
package provider

import (
	"context"
	"fmt"
	"os"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/provider/anthropic"
	"github.com/spetersoncode/github-mcp-agent/provider/google"
	"github.com/spetersoncode/github-mcp-agent/provider/mock"
	"github.com/spetersoncode/github-mcp-agent/provider/ollama"
	"github.com/spetersoncode/github-mcp-agent/provider/openai"
)

// New constructs the ChatProvider selected by cfg.Provider.
// Returns an error if the configuration is invalid for that backend.
func New(ctx context.Context, cfg *config.Config) (ai.ChatProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case config.ProviderOllama:
		return ollama.New(
			ollama.WithBaseURL(cfg.OllamaBaseURL),
			ollama.WithModel(cfg.OllamaModel),
		), nil
	case config.ProviderGemini:
		return google.New(ctx, cfg.GoogleAPIKey, google.WithModel(cfg.GeminiModel))
	case config.ProviderAnthropic:
		return anthropic.New(cfg.AnthropicAPIKey, anthropic.WithModel(cfg.AnthropicModel)), nil
	case config.ProviderOpenAI:
		return openai.New(cfg.OpenAIAPIKey, openai.WithModel(cfg.OpenAIModel)), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// NewWithFallback constructs the configured provider, falling back to
// the deterministic mock provider when construction fails. The switch
// is reported on stderr so stdout stays clean for protocol traffic.
func NewWithFallback(ctx context.Context, cfg *config.Config) ai.ChatProvider {
	p, err := New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LLM provider %s unavailable (%v), using mock responses\n", cfg.Provider, err)
		return mock.New()
	}
	return p
}
