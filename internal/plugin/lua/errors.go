package lua

import "errors"

// Errors returned by the Lua host.
var (
	// ErrHostClosed indicates an operation on a closed host.
	ErrHostClosed = errors.New("lua host is closed")

	// ErrNoRegistry indicates a host created without a formatter registry.
	ErrNoRegistry = errors.New("lua host has no formatter registry")
)
