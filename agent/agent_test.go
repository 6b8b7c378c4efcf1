package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/retry"
	"github.com/spetersoncode/github-mcp-agent/tool"
)

// scriptedProvider returns predefined responses in order.
type scriptedProvider struct {
	responses []*ai.Response
	errs      []error
	calls     int
	seen      [][]ai.Message
}

func (p *scriptedProvider) next(messages []ai.Message) (*ai.Response, error) {
	p.seen = append(p.seen, messages)
	i := p.calls
	p.calls++
	if i < len(p.errs) && p.errs[i] != nil {
		return nil, p.errs[i]
	}
	if i >= len(p.responses) {
		return &ai.Response{Content: "done", FinishReason: "stop"}, nil
	}
	return p.responses[i], nil
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return p.next(messages)
}

func (p *scriptedProvider) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	resp, err := p.next(messages)
	if err != nil {
		return nil, err
	}
	ch := make(chan ai.StreamEvent, 2)
	if resp.Content != "" {
		ch <- ai.StreamEvent{Delta: resp.Content}
	}
	ch <- ai.StreamEvent{Done: true, Response: resp}
	close(ch)
	return ch, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Provider:    config.ProviderOllama,
		OllamaModel: "llama2",
		GeminiModel: "gemini-pro",
		MaxSteps:    10,
		Timeout:     time.Minute,
	}
}

func TestSendDirectAnswer(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{
			{Content: "Hello there!", FinishReason: "stop"},
		},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	result, err := a.Send(context.Background(), "hi", WithRetry(retry.Disabled()))
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", result.Response.Content)
	assert.Equal(t, TerminationComplete, result.Termination)
	assert.Equal(t, 1, result.Steps)

	history := a.History()
	require.Len(t, history, 2)
	assert.Equal(t, ai.RoleUser, history[0].Role)
	assert.Equal(t, ai.RoleAssistant, history[1].Role)
}

func TestSendWithToolCalls(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{
			{
				Content:      "I'll add those for you.",
				FinishReason: "tool_calls",
				ToolCalls: []ai.ToolCall{
					{ID: "call-1", Name: "add_numbers", Arguments: `{"a":15,"b":27}`},
				},
			},
			{Content: "The answer is 42.", FinishReason: "stop"},
		},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	result, err := a.Send(context.Background(), "Add 15 and 27", WithRetry(retry.Disabled()))
	require.NoError(t, err)
	assert.Equal(t, "The answer is 42.", result.Response.Content)
	assert.Equal(t, 2, result.Steps)

	// user, assistant+tool_calls, tool results, final assistant
	history := a.History()
	require.Len(t, history, 4)
	assert.Equal(t, ai.RoleTool, history[2].Role)
	require.Len(t, history[2].ToolResults, 1)
	assert.Equal(t, "Addition Result: 15 + 27 = 42", history[2].ToolResults[0].Content)

	// Second provider call must include the tool results
	require.Len(t, provider.seen, 2)
	assert.Len(t, provider.seen[1], 3)
}

func TestSendUnknownTool(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{
			{
				FinishReason: "tool_calls",
				ToolCalls: []ai.ToolCall{
					{ID: "call-1", Name: "launch_rocket", Arguments: `{}`},
				},
			},
			{Content: "Sorry, I can't do that.", FinishReason: "stop"},
		},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	result, err := a.Send(context.Background(), "launch", WithRetry(retry.Disabled()))
	require.NoError(t, err)
	assert.Equal(t, TerminationComplete, result.Termination)

	history := a.History()
	require.GreaterOrEqual(t, len(history), 3)
	toolMsg := history[2]
	require.Len(t, toolMsg.ToolResults, 1)
	assert.True(t, toolMsg.ToolResults[0].IsError)
	assert.Contains(t, toolMsg.ToolResults[0].Content, "launch_rocket")
}

func TestMaxStepsTermination(t *testing.T) {
	// Provider always requests another tool call
	looping := &loopingProvider{}
	a := New(looping, BuiltinRegistry(testConfig(), true), nil)

	result, err := a.Send(context.Background(), "add 1 and 2",
		WithMaxSteps(3), WithRetry(retry.Disabled()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxStepsReached)
	assert.Equal(t, TerminationMaxSteps, result.Termination)
	assert.Equal(t, 3, result.Steps)
}

type loopingProvider struct{}

func (p *loopingProvider) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return &ai.Response{
		FinishReason: "tool_calls",
		ToolCalls: []ai.ToolCall{
			{ID: ai.GenerateCallID(), Name: "add_numbers", Arguments: `{"a":1,"b":2}`},
		},
	}, nil
}

func (p *loopingProvider) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	resp, _ := p.Chat(ctx, messages, opts...)
	ch := make(chan ai.StreamEvent, 1)
	ch <- ai.StreamEvent{Done: true, Response: resp}
	close(ch)
	return ch, nil
}

func TestProviderErrorTerminatesRun(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{ai.NewPermanentError("invalid api key", 401, nil)},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	result, err := a.Send(context.Background(), "hi", WithRetry(retry.Disabled()))
	require.Error(t, err)
	assert.Equal(t, TerminationError, result.Termination)
	assert.True(t, ai.IsPermanent(err))
}

func TestTransientErrorRetried(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{ai.NewTransientError("rate limited", 429, nil), nil},
		responses: []*ai.Response{
			nil,
			{Content: "recovered", FinishReason: "stop"},
		},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	cfg := retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
	result, err := a.Send(context.Background(), "hi", WithRetry(cfg))
	require.NoError(t, err)
	assert.Equal(t, "recovered", result.Response.Content)
	assert.Equal(t, 2, provider.calls)
}

func TestSendStreamEvents(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{
			{
				FinishReason: "tool_calls",
				ToolCalls: []ai.ToolCall{
					{ID: "call-1", Name: "multiply_numbers", Arguments: `{"x":8,"y":9}`},
				},
			},
			{Content: "72 it is.", FinishReason: "stop"},
		},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	var types []EventType
	var toolResult *ai.ToolResult
	for ev := range a.SendStream(context.Background(), "Multiply 8 by 9", WithRetry(retry.Disabled())) {
		types = append(types, ev.Type)
		if ev.Type == EventToolResult {
			toolResult = ev.ToolResult
		}
		require.NotZero(t, ev.Timestamp)
	}

	assert.Contains(t, types, EventStepStart)
	assert.Contains(t, types, EventToolCallRequested)
	assert.Contains(t, types, EventToolResult)
	assert.Contains(t, types, EventAgentComplete)
	require.NotNil(t, toolResult)
	assert.Equal(t, "Multiplication Result: 8 × 9 = 72", toolResult.Content)
}

func TestSystemPromptPrepended(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{{Content: "ok", FinishReason: "stop"}},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	_, err := a.Send(context.Background(), "hi",
		WithSystemPrompt("You are a helpful agent."), WithRetry(retry.Disabled()))
	require.NoError(t, err)

	require.NotEmpty(t, provider.seen)
	first := provider.seen[0][0]
	assert.Equal(t, ai.RoleSystem, first.Role)
	assert.Equal(t, "You are a helpful agent.", first.Content)
}

func TestRunDoesNotTouchHistory(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{{Content: "standalone", FinishReason: "stop"}},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	result, err := a.Run(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "one-off"},
	}, WithRetry(retry.Disabled()))
	require.NoError(t, err)
	assert.Equal(t, "standalone", result.Response.Content)
	assert.Empty(t, a.History())
	assert.Equal(t, 2, result.MessageCount())
}

func TestResetClearsHistory(t *testing.T) {
	provider := &scriptedProvider{
		responses: []*ai.Response{{Content: "ok", FinishReason: "stop"}},
	}
	a := New(provider, BuiltinRegistry(testConfig(), true), nil)

	_, err := a.Send(context.Background(), "hi", WithRetry(retry.Disabled()))
	require.NoError(t, err)
	require.NotEmpty(t, a.History())

	a.Reset()
	assert.Empty(t, a.History())
}

func TestBuiltinRegistry(t *testing.T) {
	r := BuiltinRegistry(testConfig(), false)
	assert.ElementsMatch(t,
		[]string{"add_numbers", "multiply_numbers", "get_agent_help", "get_system_info"},
		r.Names())

	t.Run("get_agent_help", func(t *testing.T) {
		out, err := execute(t, r, "get_agent_help", `{}`)
		require.NoError(t, err)
		assert.Contains(t, out, "Mathematical Operations")
	})

	t.Run("get_system_info reports status", func(t *testing.T) {
		out, err := execute(t, r, "get_system_info", `{}`)
		require.NoError(t, err)
		assert.Contains(t, out, "LLM Provider: ollama")
		assert.Contains(t, out, "LLM Status: Not Connected")
	})

	t.Run("add_numbers", func(t *testing.T) {
		out, err := execute(t, r, "add_numbers", `{"a":2,"b":3}`)
		require.NoError(t, err)
		assert.Equal(t, "Addition Result: 2 + 3 = 5", out)
	})

	t.Run("multiply_numbers", func(t *testing.T) {
		out, err := execute(t, r, "multiply_numbers", `{"x":4,"y":6}`)
		require.NoError(t, err)
		assert.Equal(t, "Multiplication Result: 4 × 6 = 24", out)
	})

	t.Run("add_numbers missing arguments", func(t *testing.T) {
		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call-test",
			Name:      "add_numbers",
			Arguments: `{}`,
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "'a'")
		assert.Contains(t, result.Content, "'b'")
	})

	t.Run("multiply_numbers missing one argument", func(t *testing.T) {
		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call-test",
			Name:      "multiply_numbers",
			Arguments: `{"x":4}`,
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "'y'")
	})
}

func execute(t *testing.T, r *tool.Registry, name, args string) (string, error) {
	t.Helper()
	result, err := r.Execute(context.Background(), ai.ToolCall{
		ID:        "call-test",
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", err
	}
	if result.IsError {
		return "", errors.New(result.Content)
	}
	return result.Content, nil
}
