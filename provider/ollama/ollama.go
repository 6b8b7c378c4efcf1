// Package ollama implements ai.ChatProvider against a local Ollama
// server. Ollama exposes an OpenAI-compatible chat completions API
// under /v1, so the client delegates to the openai provider with a
// custom base URL.
package ollama

import (
	"context"
	"strings"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/provider/openai"
)

// DefaultBaseURL is the default Ollama server address.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModel is used when no model is configured.
const DefaultModel = "llama2"

// Client talks to a local Ollama server.
type Client struct {
	inner   *openai.Client
	baseURL string
	model   string
}

// New creates a new Ollama client.
func New(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Ollama ignores the API key but the SDK requires one.
	c.inner = openai.New("ollama",
		openai.WithBaseURL(strings.TrimRight(c.baseURL, "/")+"/v1"),
		openai.WithModel(c.model),
	)
	return c
}

// ClientOption configures the Ollama client.
type ClientOption func(*Client)

// WithBaseURL sets the Ollama server address.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// BaseURL returns the configured Ollama server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return c.inner.Chat(ctx, messages, opts...)
}

// ChatStream sends a conversation and returns a channel of streaming events.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	return c.inner.ChatStream(ctx, messages, opts...)
}

var _ ai.ChatProvider = (*Client)(nil)
