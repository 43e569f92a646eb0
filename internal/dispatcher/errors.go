package dispatcher

import "errors"

// Errors returned by dispatch operations.
var (
	// ErrEmptyAction indicates a dispatch with an empty action name.
	ErrEmptyAction = errors.New("empty action name")
)
