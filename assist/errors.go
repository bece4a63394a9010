// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package assist

import (
	"errors"
	"fmt"
)

// ErrorType categorizes the failures of an Assistant.
type ErrorType string

const (
	// ServiceUnavailable means no credential is configured for the service.
	ServiceUnavailable ErrorType = "service unavailable"

	// TransformFailure means the request failed in transit, or the model did
	// not produce usable output.
	TransformFailure ErrorType = "transform failure"
)

// Sentinel errors for use with errors.Is. An *Error matches the sentinel with
// the same Type.
var (
	ErrServiceUnavailable = &Error{Type: ServiceUnavailable, Message: "AI service unavailable"}
	ErrTransformFailure   = &Error{Type: TransformFailure, Message: "AI transform failed"}
)

// Error is the concrete type of errors reported by an Assistant.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same type as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Unavailablef constructs a ServiceUnavailable error.
func Unavailablef(msg string, args ...any) *Error {
	return &Error{Type: ServiceUnavailable, Message: fmt.Sprintf(msg, args...)}
}

// TransformFailed constructs a TransformFailure error wrapping err.
func TransformFailed(msg string, err error) *Error {
	return &Error{Type: TransformFailure, Message: msg, Err: err}
}

// AsError converts err to an *Error. If err is or wraps an *Error, that value
// is returned; otherwise err is wrapped as a TransformFailure. AsError
// returns nil if err == nil.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return TransformFailed("request failed", err)
}
