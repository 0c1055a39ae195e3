package domain

import (
	"errors"
	"fmt"
)

// Error kinds for the registry domain. Use errors.Is() to check these; every
// *Error unwraps to exactly one of them.
var (
	// ErrNotFound indicates the inventory, item, claim or member does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized indicates the caller lacks the role or status required.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrConflict indicates the operation collides with current state: a
	// duplicate claim, an item already assigned, a finished claimant, a full
	// connection quota.
	ErrConflict = errors.New("conflict")

	// ErrBadInput indicates the request is malformed or internally inconsistent.
	ErrBadInput = errors.New("bad input")
)

// Error is a tagged domain error. Message is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns an ErrNotFound-kinded error with a client-safe message.
func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

// NotAuthorized returns an ErrNotAuthorized-kinded error.
func NotAuthorized(format string, args ...any) error {
	return newError(ErrNotAuthorized, format, args...)
}

// Conflict returns an ErrConflict-kinded error.
func Conflict(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

// BadInput returns an ErrBadInput-kinded error.
func BadInput(format string, args ...any) error {
	return newError(ErrBadInput, format, args...)
}
