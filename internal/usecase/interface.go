// Package usecase implements the credential business logic and orchestrates
// engine operations over credentials: hashing, verification with brute-force
// throttling, and provisioning of generated credentials.
package usecase

import (
	"context"

	"github.com/cenesthesia/sentinelauth/credential"
	apperrors "github.com/cenesthesia/sentinelauth/errors"
)

// HashedCredential is the storable result of hashing a credential: the user
// identifier together with the salt and the derived key. Neither field is
// secret on its own - the derived key is treated as non-reversible - but the
// pair must be stored together since verification needs both.
type HashedCredential struct {
	UserIdentifier string
	Salt           []byte
	Hash           []byte
}

// Domain-specific errors for credential operations.
var (
	// ErrPasswordWeak indicates the password does not satisfy the strength policy.
	ErrPasswordWeak = apperrors.Wrap(
		apperrors.ErrInvalidArgument,
		"password does not meet strength policy",
	)

	// ErrVerificationThrottled indicates the per-identifier attempt budget is
	// exhausted. Surfaces before any derivation work is spent on the attempt.
	ErrVerificationThrottled = apperrors.New("too many verification attempts")
)

// UseCase defines the interface for credential business logic operations.
//
// All operations consume the credential's password buffer: it is wiped before
// the call returns, on success and on error. Callers that need the password
// afterwards must retain it in a secure.Enclave beforehand.
type UseCase interface {
	// HashCredential enforces the strength policy, generates a fresh salt,
	// and derives the storable key for the credential.
	HashCredential(ctx context.Context, cred *credential.Credential) (*HashedCredential, error)

	// VerifyCredential validates the credential's password against a stored
	// hash and salt, throttled per user identifier.
	VerifyCredential(
		ctx context.Context,
		cred *credential.Credential,
		storedHash, salt []byte,
	) (bool, error)

	// GenerateCredential provisions a credential with a system-assigned
	// identifier and a generated policy-satisfying password.
	GenerateCredential(ctx context.Context, length int) (*credential.Credential, error)
}
