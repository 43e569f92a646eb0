package execctx

import "errors"

// Errors returned by context validation.
var (
	// ErrNoEngine indicates the context has no engine attached.
	ErrNoEngine = errors.New("execution context has no engine")

	// ErrNoCursor indicates the context has no cursor attached.
	ErrNoCursor = errors.New("execution context has no cursor")
)
