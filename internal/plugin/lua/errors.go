package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution times out.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoContext is raised when an editor function is called outside a
	// command or mapping.
	ErrNoContext = errors.New("editor functions are only available inside commands and mappings")
)
