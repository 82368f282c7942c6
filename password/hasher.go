package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	apperrors "github.com/cenesthesia/sentinelauth/errors"
)

// hashFactory builds the HMAC inner hash for PBKDF2. It is a variable so
// tests can simulate an environment where the primitive is unavailable.
var hashFactory func() hash.Hash = sha256.New

// GenerateSalt produces a fresh 16-byte salt from the shared random source.
//
// Salts are generated per credential and stored alongside the derived key.
// Random-source exhaustion is the only failure mode and is treated as fatal.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltLength)
}

// DeriveKey turns (password, salt) into a 32-byte key using
// PBKDF2-HMAC-SHA-256 with the fixed engine parameters. Deterministic: the
// same (password, salt) always yields the same key.
//
// The password buffer is wiped before DeriveKey returns, on success and on
// every error path. Callers that need the password afterwards must copy it
// first.
//
// Errors: ErrInvalidArgument (empty password or salt),
// ErrCryptoEngineUnavailable (HMAC-SHA-256 implementation missing),
// ErrInvalidKeySpec (parameter set rejected by the primitive).
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrPasswordEmpty
	}
	defer Zero(password)

	if len(salt) == 0 {
		return nil, ErrSaltEmpty
	}

	return derive(password, salt, Iterations, KeyLength)
}

// derive runs PBKDF2 after validating the parameter set and the availability
// of the underlying hash primitive.
func derive(password, salt []byte, iterations, keyLength int) ([]byte, error) {
	if iterations < 1 || keyLength < 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidKeySpec, "derivation parameters rejected")
	}

	newHash := hashFactory
	if newHash == nil || newHash() == nil {
		return nil, apperrors.Wrap(
			apperrors.ErrCryptoEngineUnavailable,
			"HMAC-SHA-256 implementation missing",
		)
	}

	return pbkdf2.Key(password, salt, iterations, keyLength, newHash), nil
}

// ConstantTimeEquals compares two byte sequences in constant time with
// respect to their contents. Returns false if either input is nil.
//
// If the lengths differ it returns false immediately, which leaks the length
// through timing. The original design flags this as a known, unresolved
// weakness rather than a choice; the behavior is preserved as-is.
func ConstantTimeEquals(a, b []byte) bool {
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}

	return subtle.ConstantTimeCompare(a, b) == 1
}

// VerifyPassword validates a candidate password against a stored derived key
// and its salt. The derivation runs on an internal copy of the candidate; the
// original candidate buffer is wiped before VerifyPassword returns, on every
// exit path, independent of the derivation's own zeroing of the copy.
//
// Errors: ErrInvalidArgument when any of the three inputs is empty.
func VerifyPassword(candidate, storedHash, salt []byte) (bool, error) {
	if len(candidate) == 0 {
		return false, ErrPasswordEmpty
	}
	defer Zero(candidate)

	if len(storedHash) == 0 {
		return false, ErrStoredHashEmpty
	}
	if len(salt) == 0 {
		return false, ErrSaltEmpty
	}

	working := make([]byte, len(candidate))
	copy(working, candidate)

	testHash, err := DeriveKey(working, salt)
	if err != nil {
		return false, err
	}
	defer Zero(testHash)

	return ConstantTimeEquals(testHash, storedHash), nil
}
