// Package common defines shared constants, sentinel errors and small helpers
// used across client and server layers. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorConflict     = errors.New("conflict")
	ErrorBadRequest   = errors.New("bad request")

	// Boundary validation errors.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// Error is a categorized error with a caller-visible message.
// Kind is one of the sentinel errors above, so errors.Is(err, ErrorConflict)
// matches an *Error whose Kind is ErrorConflict.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds a categorized error with a formatted message.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Message returns the caller-visible message of err. For errors that are not
// *Error the message of the sentinel kind is returned, never the raw cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrorInternal.Error()
}
