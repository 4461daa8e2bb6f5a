package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error

	origin *Error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel a copy was derived from via WithCause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e == t || e.origin == t
}

// WithCause returns a copy of the error carrying the underlying cause.
// The copy still satisfies errors.Is against e.
func (e *Error) WithCause(err error) *Error {
	if e == nil {
		return nil
	}
	origin := e
	if e.origin != nil {
		origin = e.origin
	}
	return &Error{Code: e.Code, Message: e.Message, Err: err, origin: origin}
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Common domain errors.
var (
	ErrUserNotFound          = NewError(ErrCodeNotFound, "User not found")
	ErrTaskNotFound          = NewError(ErrCodeNotFound, "Task not found")
	ErrReferencedUserMissing = NewError(ErrCodeNotFound, "User not found")
	ErrDuplicateEmail        = NewError(ErrCodeConflict, "Email already exists")
	ErrInvalidPayload        = NewError(ErrCodeInvalid, "invalid payload")
)

// Invalid builds an INVALID error carrying a client-facing message.
func Invalid(message string) *Error {
	return NewError(ErrCodeInvalid, message)
}

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// Message returns the client-facing message of a domain error, or fallback
// when err carries no domain classification.
func Message(err error, fallback string) string {
	var dErr *Error
	if errors.As(err, &dErr) && dErr.Message != "" {
		return dErr.Message
	}
	return fallback
}
