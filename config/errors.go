package config

import (
	"errors"
	"fmt"
)

// Errors returned by profile validation and loading.
var (
	// ErrInvalidProfile indicates a profile field with an invalid value.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrUnknownFormat indicates a profile file whose format could not be
	// determined from its extension.
	ErrUnknownFormat = errors.New("unknown profile format")
)

// ParseError indicates a profile file that could not be parsed.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing profile %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
