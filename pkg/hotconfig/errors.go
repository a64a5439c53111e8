package hotconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned by Get when no good value has ever been
	// loaded for a key and the current load attempt failed too.
	ErrUnavailable = errors.New("configuration unavailable")

	// ErrNotFound is returned by accessors when the config itself is valid
	// but the requested id, group or path is absent.
	ErrNotFound = errors.New("not found")

	// ErrUnknownKey is returned by Get for a key that was never registered.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// ParseError reports bytes that are not well-formed for the expected format.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports a well-formed document that is missing required
// top-level structure.
type ShapeError struct {
	Key    string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid shape for %s: %s", e.Key, e.Reason)
}
