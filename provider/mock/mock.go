// Package mock implements a deterministic ai.ChatProvider used when
// no LLM backend is reachable. It pattern-matches the last user
// message and emits canned replies and tool calls, which keeps the
// agent demo and the test suite runnable offline.
package mock

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ai "github.com/spetersoncode/github-mcp-agent"
)

// ModelName identifies the mock backend in responses.
const ModelName = "mock"

const helpReply = "I can help you with mathematical operations! Try asking me to add or multiply numbers."

const fallbackReply = "I can help you with adding and multiplying numbers. Try saying 'add 5 and 3' or 'multiply 4 by 6'!"

var numberPattern = regexp.MustCompile(`\d+`)

// Client is a deterministic offline ChatProvider.
type Client struct{}

// New creates a mock client.
func New() *Client {
	return &Client{}
}

// Chat inspects the last user message and returns a canned response.
// Messages that look like arithmetic requests produce tool calls for
// add_numbers or multiply_numbers; tool results are summarized back.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// After tool execution, report the results back as the final answer
	if results := lastToolResults(messages); len(results) > 0 {
		var parts []string
		for _, tr := range results {
			parts = append(parts, tr.Content)
		}
		return textResponse(strings.Join(parts, "\n")), nil
	}

	last := strings.ToLower(lastUserContent(messages))

	switch {
	case strings.Contains(last, "help") || strings.Contains(last, "what"):
		return textResponse(helpReply), nil

	case strings.Contains(last, "add") && containsDigit(last):
		if numbers := numberPattern.FindAllString(last, -1); len(numbers) >= 2 {
			return toolResponse(
				fmt.Sprintf("I'll add %s and %s for you.", numbers[0], numbers[1]),
				ai.ToolCall{
					ID:        ai.GenerateCallID(),
					Name:      "add_numbers",
					Arguments: fmt.Sprintf(`{"a":%s,"b":%s}`, numbers[0], numbers[1]),
				},
			), nil
		}

	case strings.Contains(last, "multiply") && containsDigit(last):
		if numbers := numberPattern.FindAllString(last, -1); len(numbers) >= 2 {
			return toolResponse(
				fmt.Sprintf("I'll multiply %s by %s for you.", numbers[0], numbers[1]),
				ai.ToolCall{
					ID:        ai.GenerateCallID(),
					Name:      "multiply_numbers",
					Arguments: fmt.Sprintf(`{"x":%s,"y":%s}`, numbers[0], numbers[1]),
				},
			), nil
		}
	}

	return textResponse(fallbackReply), nil
}

// ChatStream returns the Chat response as a single delta followed by
// the final event.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	resp, err := c.Chat(ctx, messages, opts...)
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

func lastUserContent(messages []ai.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == ai.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

func lastToolResults(messages []ai.Message) []ai.ToolResult {
	if len(messages) == 0 {
		return nil
	}
	last := messages[len(messages)-1]
	if last.Role != ai.RoleTool {
		return nil
	}
	return last.ToolResults
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func textResponse(content string) *ai.Response {
	return &ai.Response{
		Content:      content,
		FinishReason: "stop",
		Usage:        ai.Usage{},
	}
}

func toolResponse(content string, calls ...ai.ToolCall) *ai.Response {
	return &ai.Response{
		Content:      content,
		FinishReason: "tool_calls",
		ToolCalls:    calls,
	}
}

var _ ai.ChatProvider = (*Client)(nil)
