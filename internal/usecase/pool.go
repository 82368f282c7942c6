package usecase

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/cenesthesia/sentinelauth/password"
)

// DerivationPool bounds the number of concurrent key derivations. Each
// derivation burns a CPU core for tens of milliseconds by design, so an
// unbounded burst of logins can starve everything else in the process. The
// pool makes derivation a schedulable unit of work: callers queue on the
// semaphore and the derivation itself stays non-cancelable once started.
type DerivationPool struct {
	sem *semaphore.Weighted
}

// NewDerivationPool creates a pool allowing at most size concurrent
// derivations. A size below 1 is treated as 1.
func NewDerivationPool(size int) *DerivationPool {
	if size < 1 {
		size = 1
	}
	return &DerivationPool{sem: semaphore.NewWeighted(int64(size))}
}

// DeriveKey runs password.DeriveKey once a slot is free. The context bounds
// only the wait for a slot, not the derivation itself. The password buffer is
// wiped on every exit path, including a canceled wait.
func (p *DerivationPool) DeriveKey(ctx context.Context, pw, salt []byte) ([]byte, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		password.Zero(pw)
		return nil, err
	}
	defer p.sem.Release(1)

	return password.DeriveKey(pw, salt)
}

// VerifyPassword runs password.VerifyPassword once a slot is free, under the
// same slot discipline as DeriveKey. The candidate buffer is wiped on every
// exit path, including a canceled wait.
func (p *DerivationPool) VerifyPassword(
	ctx context.Context,
	candidate, storedHash, salt []byte,
) (bool, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		password.Zero(candidate)
		return false, err
	}
	defer p.sem.Release(1)

	return password.VerifyPassword(candidate, storedHash, salt)
}
