// Package apperr defines the sentinel error categories used across yousci.
//
// Error taxonomy
//
//	UserError    – caused by missing or invalid user input (unknown metal symbol,
//	               charge that does not parse, bad --sort value, …).
//	               The CLI prints only the message; usage help is NOT repeated.
//	               Exit code: 1.
//
//	ErrCancelled – the user aborted an interactive flow (prediction form,
//	               dataset browser).
//	               Exit code: 0 (not a failure).
//
// Domain lookups (reference.ErrUnknownMetal, reference.ErrUnknownSupport) are
// plain wrapped errors; the command layer converts them with Wrap so the
// message lists the keys that would have worked.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation. The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// UserError represents an error caused by invalid or missing user input.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any, to errors.Is / errors.As.
func (e *UserError) Unwrap() error { return e.Err }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// Wrap turns err into a UserError while keeping it reachable through errors.Is.
// A nil err yields nil.
func Wrap(err error, hint string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if h := strings.TrimSpace(hint); h != "" {
		msg += " (" + h + ")"
	}
	return &UserError{Message: msg, Err: err}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}
