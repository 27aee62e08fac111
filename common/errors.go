// Package common provides shared utilities for the point-of-sale order core:
// command errors, identity, event packing and money formatting.
package common

import "fmt"

// StatusCode represents the category of a command rejection.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
	StatusNotFound
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	case StatusNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when an operation is rejected by business logic.
// The message is user-facing.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Is reports whether target is a CommandError with the same code and message,
// so sentinel errors such as logic.ErrNoActiveOrder work with errors.Is.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewInvalidArgument creates a CommandError for invalid input.
func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf creates an invalid-argument CommandError with a formatted message.
func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewFailedPrecondition creates a CommandError for violated preconditions.
func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

// NewFailedPreconditionf creates a CommandError with a formatted message.
func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a CommandError for a missing aggregate.
func NewNotFound(message string) *CommandError {
	return &CommandError{Code: StatusNotFound, Message: message}
}
