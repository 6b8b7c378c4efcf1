package agent

import "errors"

// Sentinel errors for agent termination conditions.
var (
	// ErrMaxStepsReached indicates the agent hit the step limit.
	ErrMaxStepsReached = errors.New("agent: maximum steps reached")

	// ErrTimeout indicates the overall timeout was exceeded.
	ErrTimeout = errors.New("agent: timeout exceeded")
)
