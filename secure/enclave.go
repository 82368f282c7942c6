// Package secure provides a protected container for secret material that must
// outlive an engine call.
//
// Every engine operation wipes the password buffer it is handed, so a caller
// that still needs the password afterwards has to retain a copy. A plain copy
// defeats the wiping discipline; an Enclave is the sanctioned alternative. It
// wraps the memguard library so retained secrets are encrypted at rest in
// memory, protected from swapping via mlock, and securely wiped on
// destruction.
//
// It does NOT protect against attackers with root access to the running
// process or hardware-level attacks (cold boot, DMA).
package secure

import (
	"sync"

	"github.com/awnumar/memguard"

	apperrors "github.com/cenesthesia/sentinelauth/errors"
)

// Enclave holds a sealed secret. The zero value is not usable; create
// enclaves with Seal.
type Enclave struct {
	enclave *memguard.Enclave
	mu      sync.RWMutex
	// destroyed allows idempotent Destroy calls and blocks use after destroy
	destroyed bool
}

// Seal copies the secret into an encrypted enclave. The input buffer is wiped
// by memguard during sealing, keeping the one-live-copy discipline: after
// Seal returns, the enclave holds the only copy.
func Seal(secret []byte) (*Enclave, error) {
	if len(secret) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidArgument, "secret cannot be nil or empty")
	}

	return &Enclave{enclave: memguard.NewEnclave(secret)}, nil
}

// Use decrypts the secret into a locked buffer, passes it to fn, and destroys
// the buffer when fn returns. The slice handed to fn is only valid for the
// duration of the call; fn must not retain it. This is the preferred access
// pattern because the plaintext lifetime is bounded by the closure.
func (e *Enclave) Use(fn func(secret []byte) error) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.destroyed {
		return apperrors.Wrap(apperrors.ErrInvalidArgument, "enclave already destroyed")
	}

	locked, err := e.enclave.Open()
	if err != nil {
		return apperrors.Wrap(err, "failed to open enclave")
	}
	defer locked.Destroy()

	return fn(locked.Bytes())
}

// Reveal returns a caller-owned copy of the secret. The caller is responsible
// for wiping the copy once it is no longer needed; prefer Use, which bounds
// the plaintext lifetime automatically.
func (e *Enclave) Reveal() ([]byte, error) {
	var out []byte
	err := e.Use(func(secret []byte) error {
		out = make([]byte, len(secret))
		copy(out, secret)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Destroy marks the enclave as unusable. The sealed ciphertext needs no
// explicit wiping - it is encrypted at rest and useless without the enclave
// key. Idempotent.
func (e *Enclave) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return
	}

	e.enclave = nil
	e.destroyed = true
}
