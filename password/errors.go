package password

import (
	"github.com/cenesthesia/sentinelauth/errors"
)

// Password engine error definitions.
//
// These domain-specific errors wrap standard errors from the errors package
// so callers can branch on the sentinel with errors.Is while still seeing
// which precondition was violated.
var (
	// ErrPasswordEmpty indicates a nil or empty password buffer was passed to
	// an operation that requires secret material.
	ErrPasswordEmpty = errors.Wrap(errors.ErrInvalidArgument, "password cannot be nil or empty")

	// ErrSaltEmpty indicates a nil or empty salt was passed to a derivation
	// or verification.
	ErrSaltEmpty = errors.Wrap(errors.ErrInvalidArgument, "salt cannot be nil or empty")

	// ErrStoredHashEmpty indicates a nil or empty stored hash was passed to a
	// verification.
	ErrStoredHashEmpty = errors.Wrap(errors.ErrInvalidArgument, "stored hash cannot be nil or empty")

	// ErrPasswordTooShort indicates a requested generated password length is
	// below MinPasswordLength.
	ErrPasswordTooShort = errors.Wrap(
		errors.ErrInvalidArgument,
		"password length must be at least 8 characters",
	)
)
