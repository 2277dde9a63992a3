package faultline

import (
	"errors"
	"fmt"
)

// ErrInjected marks synthetic errors produced by an exhausted countdown.
// Use errors.Is(err, ErrInjected) to distinguish a forced failure from an
// annotated pass-through of the operation's own error.
var ErrInjected = errors.New("injected fault")

// Error is a location-annotated failure returned by [Fallible] and [Do].
//
// Exactly two kinds exist: a forced failure (Err is nil, the guarded
// operation never ran) and an annotated pass-through (Err is the operation's
// own error, unchanged). The location fields always describe the guard's
// call site, never an internal frame.
type Error struct {
	// Component is the import path of the package containing the call site.
	Component string

	// File and Line identify the guard invocation.
	File string
	Line int

	// Err is the underlying error, or nil for a forced failure.
	Err error
}

// Error renders the location prefix ahead of the failure message.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s:%d: injected fault", e.Component, e.File, e.Line)
	}
	return fmt.Sprintf("%s %s:%d: %s", e.Component, e.File, e.Line, e.Err)
}

// Unwrap returns the underlying error, or [ErrInjected] for forced
// failures, so errors.Is and errors.As traverse the annotation.
func (e *Error) Unwrap() error {
	if e.Err == nil {
		return ErrInjected
	}
	return e.Err
}

// IsInjected reports whether err is (or wraps) a forced failure.
func IsInjected(err error) bool {
	return errors.Is(err, ErrInjected)
}
