package agent

import (
	"time"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/retry"
)

// DefaultMaxSteps limits agent iterations when no override is given.
const DefaultMaxSteps = 10

// Options configures agent execution.
type Options struct {
	// MaxSteps limits the number of agent iterations.
	MaxSteps int

	// Timeout bounds the entire run. Zero means no timeout.
	Timeout time.Duration

	// Retry configures transient-error retry for provider calls.
	Retry retry.Config

	// SystemPrompt is prepended to the conversation when set.
	SystemPrompt string

	// ChatOptions are passed through to every provider call.
	ChatOptions []ai.Option
}

// Option configures agent execution.
type Option func(*Options)

// WithMaxSteps limits the number of agent iterations.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}

// WithTimeout bounds the entire agent run.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithRetry configures transient-error retry for provider calls.
func WithRetry(cfg retry.Config) Option {
	return func(o *Options) {
		o.Retry = cfg
	}
}

// WithSystemPrompt sets a system message for the conversation.
func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// WithChatOptions passes additional options to every provider call.
func WithChatOptions(opts ...ai.Option) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, opts...)
	}
}

// ApplyOptions applies functional options with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		MaxSteps: DefaultMaxSteps,
		Retry:    retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
