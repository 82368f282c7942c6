package password

import (
	"crypto/rand"
	"io"
	"math/big"

	apperrors "github.com/cenesthesia/sentinelauth/errors"
)

// randomSource is the process-wide cryptographically secure random source
// shared by salt and password generation. crypto/rand.Reader is safe for
// concurrent use without additional locking.
var randomSource io.Reader = rand.Reader

// randomBytes fills a new slice of the given length from the shared random
// source. Random-source exhaustion has no meaningful recovery, so the wrapped
// error is surfaced to the caller as fatal.
func randomBytes(length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := io.ReadFull(randomSource, b); err != nil {
		return nil, apperrors.Wrap(err, "failed to read random source")
	}
	return b, nil
}

// randomIndex returns a uniform random index in [0, n) from the shared random
// source. rand.Int is uniform over the range, so no modulo bias is introduced.
func randomIndex(n int) (int, error) {
	v, err := rand.Int(randomSource, big.NewInt(int64(n)))
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read random source")
	}
	return int(v.Int64()), nil
}
