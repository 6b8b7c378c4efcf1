package mock

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/github-mcp-agent"
)

func chat(t *testing.T, content string) *ai.Response {
	t.Helper()
	resp, err := New().Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: content},
	})
	require.NoError(t, err)
	return resp
}

func TestChatHelp(t *testing.T) {
	resp := chat(t, "What can you help me with?")
	assert.Contains(t, resp.Content, "mathematical operations")
	assert.Empty(t, resp.ToolCalls)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestChatAddition(t *testing.T) {
	resp := chat(t, "Add 15 and 27")
	require.Len(t, resp.ToolCalls, 1)

	call := resp.ToolCalls[0]
	assert.Equal(t, "add_numbers", call.Name)
	assert.NotEmpty(t, call.ID)
	assert.Equal(t, "tool_calls", resp.FinishReason)

	var args struct {
		A float64 `json:"a"`
		B float64 `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(call.Arguments), &args))
	assert.Equal(t, 15.0, args.A)
	assert.Equal(t, 27.0, args.B)
}

func TestChatMultiplication(t *testing.T) {
	resp := chat(t, "Multiply 8 by 9")
	require.Len(t, resp.ToolCalls, 1)

	call := resp.ToolCalls[0]
	assert.Equal(t, "multiply_numbers", call.Name)

	var args struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	require.NoError(t, json.Unmarshal([]byte(call.Arguments), &args))
	assert.Equal(t, 8.0, args.X)
	assert.Equal(t, 9.0, args.Y)
}

func TestChatFallback(t *testing.T) {
	t.Run("unrecognized message", func(t *testing.T) {
		resp := chat(t, "Tell me a story")
		assert.Contains(t, resp.Content, "adding and multiplying")
		assert.Empty(t, resp.ToolCalls)
	})

	t.Run("add without enough numbers", func(t *testing.T) {
		resp := chat(t, "add 5")
		assert.Empty(t, resp.ToolCalls)
	})

	t.Run("empty conversation", func(t *testing.T) {
		resp, err := New().Chat(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, resp.ToolCalls)
		assert.NotEmpty(t, resp.Content)
	})
}

func TestChatToolResults(t *testing.T) {
	resp, err := New().Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Add 15 and 27"},
		{Role: ai.RoleAssistant, ToolCalls: []ai.ToolCall{
			{ID: "call-1", Name: "add_numbers", Arguments: `{"a":15,"b":27}`},
		}},
		{Role: ai.RoleTool, ToolResults: []ai.ToolResult{
			{ToolCallID: "call-1", Content: "Addition Result: 15 + 27 = 42"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Addition Result: 15 + 27 = 42", resp.Content)
	assert.Empty(t, resp.ToolCalls)
}

func TestChatStream(t *testing.T) {
	ch, err := New().ChatStream(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "What can you do?"},
	})
	require.NoError(t, err)

	var deltas []string
	var final *ai.Response
	for event := range ch {
		require.NoError(t, event.Err)
		if event.Done {
			final = event.Response
		} else {
			deltas = append(deltas, event.Delta)
		}
	}

	require.NotNil(t, final)
	assert.Equal(t, final.Content, deltas[0])
}

func TestChatCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Chat(ctx, []ai.Message{{Role: ai.RoleUser, Content: "add 1 and 2"}})
	assert.ErrorIs(t, err, context.Canceled)
}
