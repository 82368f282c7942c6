// Package credential defines the credential carrier: a user identifier paired
// with a password buffer. The hashing engine never inspects credentials
// directly - callers extract the password buffer before invoking engine
// operations.
package credential

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/cenesthesia/sentinelauth/errors"
	"github.com/cenesthesia/sentinelauth/password"
)

// Credential pairs a user identifier with password material. The password is
// a secret buffer subject to the engine's wiping discipline: engine operations
// that consume it will zero it, and ClearPassword wipes it explicitly.
type Credential struct {
	userIdentifier string
	password       []byte
}

// New creates a credential from a user identifier and password buffer. The
// credential takes no copy - it references the caller's buffer directly, so
// wiping either wipes both.
func New(userIdentifier string, pw []byte) (*Credential, error) {
	if userIdentifier == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidArgument, "user identifier cannot be empty")
	}

	return &Credential{
		userIdentifier: userIdentifier,
		password:       pw,
	}, nil
}

// NewWithGeneratedID creates a credential with a generated UUIDv7 user
// identifier. Useful for provisioning flows where the identifier is assigned
// by the system rather than chosen by the user.
func NewWithGeneratedID(pw []byte) *Credential {
	return &Credential{
		userIdentifier: uuid.Must(uuid.NewV7()).String(),
		password:       pw,
	}
}

// UserIdentifier returns the user identifier.
func (c *Credential) UserIdentifier() string {
	return c.userIdentifier
}

// SetUserIdentifier replaces the user identifier.
func (c *Credential) SetUserIdentifier(userIdentifier string) {
	c.userIdentifier = userIdentifier
}

// Password returns the password buffer. The returned slice is the credential's
// own buffer, not a copy: engine operations handed this slice will wipe it.
func (c *Credential) Password() []byte {
	return c.password
}

// SetPassword replaces the password buffer, wiping the previous one first so
// stale secret material does not linger.
func (c *Credential) SetPassword(pw []byte) {
	password.Zero(c.password)
	c.password = pw
}

// ClearPassword wipes the password buffer in place. Idempotent.
func (c *Credential) ClearPassword() {
	password.Zero(c.password)
}

// Equal reports whether two credentials carry the same identifier and the
// same password material. The password comparison is constant time.
func (c *Credential) Equal(other *Credential) bool {
	if other == nil {
		return false
	}
	return c.userIdentifier == other.userIdentifier &&
		password.ConstantTimeEquals(c.password, other.password)
}

// String renders the credential with the password redacted. Secret material
// must never reach logs through the stringer.
func (c *Credential) String() string {
	masked := "null"
	if c.password != nil {
		masked = "*****"
	}
	return fmt.Sprintf("Credential{userIdentifier=%q, password=%s}", c.userIdentifier, masked)
}
