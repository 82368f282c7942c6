package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cenesthesia/sentinelauth/internal/usecase"
	"github.com/cenesthesia/sentinelauth/password"
)

// RunBenchmark measures key derivation throughput through the derivation
// pool. Each iteration derives a key from a freshly generated password and a
// fresh salt, so the workload matches what a real login burst costs.
func RunBenchmark(
	ctx context.Context,
	pool *usecase.DerivationPool,
	logger *slog.Logger,
	w io.Writer,
	iterations, concurrency int,
) error {
	if iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}
	if concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}

	logger.Info("starting benchmark",
		slog.Int("iterations", iterations),
		slog.Int("concurrency", concurrency),
	)

	durations := make([]time.Duration, iterations)
	errs := make([]error, iterations)

	jobs := make(chan int)
	var wg sync.WaitGroup

	start := time.Now()
	for worker := 0; worker < concurrency; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				durations[i], errs[i] = runDerivation(ctx, pool)
			}
		}()
	}

	for i := 0; i < iterations; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("derivation %d failed: %w", i, err)
		}
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	fmt.Fprintf(w, "Iterations:   %d\n", iterations)
	fmt.Fprintf(w, "Concurrency:  %d\n", concurrency)
	fmt.Fprintf(w, "Elapsed:      %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Throughput:   %.1f derivations/s\n", float64(iterations)/elapsed.Seconds())
	fmt.Fprintf(w, "Mean:         %s\n", (total / time.Duration(iterations)).Round(time.Microsecond))
	fmt.Fprintf(w, "P50:          %s\n", percentile(durations, 0.50).Round(time.Microsecond))
	fmt.Fprintf(w, "P95:          %s\n", percentile(durations, 0.95).Round(time.Microsecond))
	fmt.Fprintf(w, "Max:          %s\n", durations[len(durations)-1].Round(time.Microsecond))

	return nil
}

// runDerivation derives one key from fresh material and reports how long the
// derivation took, including the wait for a pool slot.
func runDerivation(ctx context.Context, pool *usecase.DerivationPool) (time.Duration, error) {
	pw, err := password.GeneratePassword(password.DefaultPasswordLength)
	if err != nil {
		return 0, err
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		password.Zero(pw)
		return 0, err
	}

	start := time.Now()
	key, err := pool.DeriveKey(ctx, pw, salt)
	if err != nil {
		return 0, err
	}
	password.Zero(key)

	return time.Since(start), nil
}

// percentile picks the value at quantile q from already sorted durations.
func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	return sorted[idx]
}
