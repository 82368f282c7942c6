package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cenesthesia/sentinelauth/password"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testPoolSalt() []byte {
	salt := make([]byte, password.SaltLength)
	for i := range salt {
		salt[i] = byte(i + 1)
	}
	return salt
}

func TestNewDerivationPool(t *testing.T) {
	t.Parallel()

	t.Run("PositiveSize", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(4)
		assert.NotNil(t, pool)
	})

	t.Run("SizeBelowOne_ClampsToOne", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(0)
		require.NotNil(t, pool)

		// A single-slot pool still completes work.
		key, err := pool.DeriveKey(context.Background(), []byte("Cm8&Ckqz2h6,KOH0"), testPoolSalt())
		require.NoError(t, err)
		assert.Len(t, key, password.KeyLength)
	})
}

func TestDerivationPool_DeriveKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_MatchesDirectDerivation", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(2)

		pooled, err := pool.DeriveKey(ctx, []byte("Cm8&Ckqz2h6,KOH0"), testPoolSalt())
		require.NoError(t, err)

		direct, err := password.DeriveKey([]byte("Cm8&Ckqz2h6,KOH0"), testPoolSalt())
		require.NoError(t, err)

		assert.Equal(t, direct, pooled)
	})

	t.Run("Success_WipesPassword", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(2)

		pw := []byte("Cm8&Ckqz2h6,KOH0")
		_, err := pool.DeriveKey(ctx, pw, testPoolSalt())
		require.NoError(t, err)

		for i, b := range pw {
			assert.Zero(t, b, "password byte %d not wiped", i)
		}
	})

	t.Run("CanceledContext_WipesPassword", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(1)

		// Hold the only slot so the acquire has to wait on the context.
		release := make(chan struct{})
		started := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			close(started)
			holdCtx := context.Background()
			_ = pool.sem.Acquire(holdCtx, 1)
			<-release
			pool.sem.Release(1)
		}()
		<-started

		canceledCtx, cancel := context.WithCancel(ctx)
		cancel()

		pw := []byte("Cm8&Ckqz2h6,KOH0")
		_, err := pool.DeriveKey(canceledCtx, pw, testPoolSalt())
		require.Error(t, err)

		for i, b := range pw {
			assert.Zero(t, b, "password byte %d not wiped", i)
		}

		close(release)
		wg.Wait()
	})

	t.Run("InvalidInput_PropagatesEngineError", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(2)

		_, err := pool.DeriveKey(ctx, []byte{}, testPoolSalt())
		assert.ErrorIs(t, err, password.ErrPasswordEmpty)
	})
}

func TestDerivationPool_VerifyPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("CorrectPassword_ReturnsTrue", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(2)

		stored, err := password.DeriveKey([]byte("Cm8&Ckqz2h6,KOH0"), testPoolSalt())
		require.NoError(t, err)

		ok, err := pool.VerifyPassword(ctx, []byte("Cm8&Ckqz2h6,KOH0"), stored, testPoolSalt())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("WrongPassword_ReturnsFalse", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(2)

		stored, err := password.DeriveKey([]byte("Cm8&Ckqz2h6,KOH0"), testPoolSalt())
		require.NoError(t, err)

		ok, err := pool.VerifyPassword(ctx, []byte("wrongPassword"), stored, testPoolSalt())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("CanceledContext_WipesCandidate", func(t *testing.T) {
		t.Parallel()
		pool := NewDerivationPool(1)

		require.NoError(t, pool.sem.Acquire(context.Background(), 1))
		defer pool.sem.Release(1)

		canceledCtx, cancel := context.WithCancel(ctx)
		cancel()

		candidate := []byte("Cm8&Ckqz2h6,KOH0")
		_, err := pool.VerifyPassword(canceledCtx, candidate, testPoolSalt(), testPoolSalt())
		require.Error(t, err)

		for i, b := range candidate {
			assert.Zero(t, b, "candidate byte %d not wiped", i)
		}
	})
}

func TestDerivationPool_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const (
		poolSize = 2
		workers  = 8
	)

	pool := NewDerivationPool(poolSize)

	var inFlight, maxInFlight atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := pool.sem.Acquire(context.Background(), 1); err != nil {
				return
			}
			defer pool.sem.Release(1)

			current := inFlight.Add(1)
			for {
				observed := maxInFlight.Load()
				if current <= observed || maxInFlight.CompareAndSwap(observed, current) {
					break
				}
			}
			inFlight.Add(-1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxInFlight.Load(), int64(poolSize))
}
