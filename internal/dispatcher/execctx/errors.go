package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEditor indicates the context has no editor attached.
	ErrMissingEditor = errors.New("execution context: editor is required")

	// ErrMissingArgument indicates an action needed an argument key that
	// was not supplied.
	ErrMissingArgument = errors.New("execution context: argument key is required")
)
