package config

import (
	"errors"
	"fmt"
)

// ErrUnknownFormatter indicates a formatter mapping naming no built-in.
var ErrUnknownFormatter = errors.New("unknown formatter name")

// ParseError describes a configuration file that failed to parse.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
