package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// verifyLimiterStore holds per-identifier rate limiters with automatic cleanup.
//
// Verification is the brute-force surface of the engine: each attempt costs a
// full derivation, so throttling per user identifier both protects the
// account and caps the CPU an attacker can make the process spend.
type verifyLimiterStore struct {
	limiters sync.Map // map[string]*verifyLimiterEntry
	rps      float64
	burst    int
}

// verifyLimiterEntry holds a rate limiter and last access time for cleanup.
type verifyLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// newVerifyLimiterStore creates a store with the given token bucket settings
// and starts a cleanup goroutine for stale limiters.
func newVerifyLimiterStore(ctx context.Context, rps float64, burst int) *verifyLimiterStore {
	store := &verifyLimiterStore{
		rps:   rps,
		burst: burst,
	}

	// Stale limiters are fully refilled buckets, so dropping them loses nothing.
	go store.cleanupStale(ctx, 5*time.Minute)

	return store
}

// allow reports whether a verification attempt for the identifier fits the
// attempt budget.
func (s *verifyLimiterStore) allow(userIdentifier string) bool {
	return s.getLimiter(userIdentifier).Allow()
}

// getLimiter returns the rate limiter for the identifier, creating it on
// first access.
func (s *verifyLimiterStore) getLimiter(userIdentifier string) *rate.Limiter {
	now := time.Now()

	if value, ok := s.limiters.Load(userIdentifier); ok {
		entry := value.(*verifyLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &verifyLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(userIdentifier, entry)
	return actual.(*verifyLimiterEntry).limiter
}

// cleanupStale periodically removes limiters that have not been used for the
// given interval, until the context is canceled.
func (s *verifyLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			s.limiters.Range(func(key, value any) bool {
				entry := value.(*verifyLimiterEntry)
				entry.mu.Lock()
				stale := entry.lastAccess.Before(cutoff)
				entry.mu.Unlock()
				if stale {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
