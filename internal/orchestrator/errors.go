package orchestrator

import "errors"

var (
	// ErrTaskNotFound is returned when an operation references an
	// unknown task id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrPersonaNotFound is returned when an operation references an
	// unknown persona id.
	ErrPersonaNotFound = errors.New("persona not found")
	// ErrQueueFull is returned when the bounded task queue cannot accept
	// another payload.
	ErrQueueFull = errors.New("task queue is full")
	// ErrTaskTerminal is returned when assigning a task that already
	// reached completed or cancelled.
	ErrTaskTerminal = errors.New("task is in a terminal state")
)
