// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by services and
// use cases and inspected by callers with Is/As at the call site.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrInvalidArgument indicates a nil, empty, or out-of-range input. This is a
	// caller bug and retrying the call with the same input is never meaningful.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCryptoEngineUnavailable indicates a required cryptographic primitive is
	// missing from the runtime environment. Fatal, surfaced to the caller.
	ErrCryptoEngineUnavailable = errors.New("crypto engine unavailable")

	// ErrInvalidKeySpec indicates the underlying primitive rejected the derivation
	// parameter set. Fatal, surfaced to the caller.
	ErrInvalidKeySpec = errors.New("invalid key spec")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
