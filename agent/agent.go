// Package agent runs the autonomous tool-calling loop: it sends the
// conversation to the configured provider, executes any tool calls the
// model requests, feeds the results back, and repeats until the model
// answers without tools or a limit is hit.
package agent

import (
	"context"
	"errors"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/retry"
	"github.com/spetersoncode/github-mcp-agent/store"
	"github.com/spetersoncode/github-mcp-agent/tool"
)

// Agent orchestrates autonomous tool-calling conversations.
type Agent struct {
	provider ai.ChatProvider
	registry *tool.Registry
	history  *store.MessageStore
}

// New creates an Agent with the given provider and tool registry.
// The optional adapter persists conversation history across Sync calls.
func New(provider ai.ChatProvider, registry *tool.Registry, adapter store.Adapter) *Agent {
	return &Agent{
		provider: provider,
		registry: registry,
		history:  store.NewMessageStore(adapter),
	}
}

// History returns the accumulated conversation.
func (a *Agent) History() []ai.Message {
	return a.history.Messages()
}

// Reset clears the accumulated conversation.
func (a *Agent) Reset() {
	a.history.Clear()
}

// SaveHistory persists the conversation under the default thread.
func (a *Agent) SaveHistory(ctx context.Context) error {
	return a.history.Sync(ctx, store.DefaultThread)
}

// RestoreHistory loads the conversation from the default thread.
func (a *Agent) RestoreHistory(ctx context.Context) error {
	return a.history.Restore(ctx, store.DefaultThread)
}

// Send appends a user message to the conversation and runs the loop
// to completion. The assistant's messages and tool results are added
// to the agent's history.
func (a *Agent) Send(ctx context.Context, text string, opts ...Option) (*Result, error) {
	a.history.Append(ai.Message{
		ID:      ai.GenerateMessageID(),
		Role:    ai.RoleUser,
		Content: text,
	})
	return a.run(ctx, a.history, opts...)
}

// SendStream is like Send but returns a channel of events for
// incremental display. The channel is closed when the run finishes;
// callers must drain it.
func (a *Agent) SendStream(ctx context.Context, text string, opts ...Option) <-chan Event {
	a.history.Append(ai.Message{
		ID:      ai.GenerateMessageID(),
		Role:    ai.RoleUser,
		Content: text,
	})
	eventCh := make(chan Event, 16)
	go a.runLoop(ctx, a.history, eventCh, opts...)
	return eventCh
}

// Run executes the loop over a standalone conversation without
// touching the agent's history.
func (a *Agent) Run(ctx context.Context, messages []ai.Message, opts ...Option) (*Result, error) {
	return a.run(ctx, store.NewMessageStoreFrom(messages, nil), opts...)
}

func (a *Agent) run(ctx context.Context, history *store.MessageStore, opts ...Option) (*Result, error) {
	eventCh := make(chan Event, 16)
	go a.runLoop(ctx, history, eventCh, opts...)

	result := &Result{history: history}
	var totalUsage ai.Usage

	for ev := range eventCh {
		if ev.Step > result.Steps {
			result.Steps = ev.Step
		}

		switch ev.Type {
		case EventStepComplete:
			if ev.Response != nil {
				totalUsage.InputTokens += ev.Response.Usage.InputTokens
				totalUsage.OutputTokens += ev.Response.Usage.OutputTokens
			}

		case EventAgentComplete:
			result.Response = ev.Response
			if result.Termination == "" {
				result.Termination = TerminationComplete
			}

		case EventError:
			result.Error = ev.Error
			result.Termination = TerminationError
			switch {
			case errors.Is(ev.Error, ErrMaxStepsReached):
				result.Termination = TerminationMaxSteps
			case errors.Is(ev.Error, context.DeadlineExceeded), errors.Is(ev.Error, ErrTimeout):
				result.Termination = TerminationTimeout
			}
		}
	}

	result.TotalUsage = totalUsage
	return result, result.Error
}

func (a *Agent) runLoop(ctx context.Context, history *store.MessageStore, eventCh chan<- Event, opts ...Option) {
	defer close(eventCh)

	options := ApplyOptions(opts...)

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	if options.SystemPrompt != "" && !hasSystemMessage(history.Messages()) {
		msgs := history.Messages()
		history.Clear()
		history.Append(ai.Message{Role: ai.RoleSystem, Content: options.SystemPrompt})
		history.Append(msgs...)
	}

	chatOpts := append([]ai.Option{ai.WithTools(a.registry.Tools())}, options.ChatOptions...)

	for step := 1; ; step++ {
		if step > options.MaxSteps {
			emit(eventCh, Event{Type: EventError, Step: step - 1, Error: ErrMaxStepsReached})
			return
		}

		emit(eventCh, Event{Type: EventStepStart, Step: step})

		response, err := a.executeStep(ctx, history.Messages(), chatOpts, step, eventCh, options)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = ErrTimeout
			}
			emit(eventCh, Event{Type: EventError, Step: step, Error: err})
			return
		}

		emit(eventCh, Event{Type: EventStepComplete, Step: step, Response: response})

		if len(response.ToolCalls) == 0 {
			history.Append(ai.Message{
				ID:      ai.GenerateMessageID(),
				Role:    ai.RoleAssistant,
				Content: response.Content,
			})
			emit(eventCh, Event{Type: EventAgentComplete, Step: step, Response: response})
			return
		}

		history.Append(ai.Message{
			ID:        ai.GenerateMessageID(),
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		results := make([]ai.ToolResult, 0, len(response.ToolCalls))
		for _, tc := range response.ToolCalls {
			emit(eventCh, Event{Type: EventToolCallRequested, Step: step, ToolCall: &tc})

			result, err := a.registry.Execute(ctx, tc)
			if err != nil {
				// Unknown tool: report back to the model instead of aborting
				result = ai.ToolResult{
					ToolCallID: tc.ID,
					Content:    err.Error(),
					IsError:    true,
				}
			}
			results = append(results, result)
			emit(eventCh, Event{Type: EventToolResult, Step: step, ToolCall: &tc, ToolResult: &result})
		}

		history.Append(ai.NewToolResultMessage(results...))
	}
}

func (a *Agent) executeStep(ctx context.Context, messages []ai.Message, chatOpts []ai.Option, step int, eventCh chan<- Event, options *Options) (*ai.Response, error) {
	streamCh, err := retry.DoStream(ctx, options.Retry, func() (<-chan ai.StreamEvent, error) {
		return a.provider.ChatStream(ctx, messages, chatOpts...)
	})
	if err != nil {
		return nil, err
	}

	var response *ai.Response
	for ev := range streamCh {
		if ev.Err != nil {
			return nil, ev.Err
		}
		if ev.Delta != "" {
			emit(eventCh, Event{Type: EventStreamDelta, Step: step, Delta: ev.Delta})
		}
		if ev.Done {
			response = ev.Response
		}
	}

	if response == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("agent: stream ended without a response")
	}
	return response, nil
}

func hasSystemMessage(messages []ai.Message) bool {
	for _, msg := range messages {
		if msg.Role == ai.RoleSystem {
			return true
		}
	}
	return false
}
