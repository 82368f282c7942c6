package usecase

import (
	"context"
	"time"

	"github.com/cenesthesia/sentinelauth/credential"
	"github.com/cenesthesia/sentinelauth/internal/metrics"
)

// credentialUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// HashCredential records metrics for credential hashing operations.
func (c *credentialUseCaseWithMetrics) HashCredential(
	ctx context.Context,
	cred *credential.Credential,
) (*HashedCredential, error) {
	start := time.Now()
	hashed, err := c.next.HashCredential(ctx, cred)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential_hash", status)
	c.metrics.RecordDuration(ctx, "credential_hash", time.Since(start), status)

	return hashed, err
}

// VerifyCredential records metrics for credential verification operations.
func (c *credentialUseCaseWithMetrics) VerifyCredential(
	ctx context.Context,
	cred *credential.Credential,
	storedHash, salt []byte,
) (bool, error) {
	start := time.Now()
	ok, err := c.next.VerifyCredential(ctx, cred, storedHash, salt)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential_verify", status)
	c.metrics.RecordDuration(ctx, "credential_verify", time.Since(start), status)

	return ok, err
}

// GenerateCredential records metrics for credential generation operations.
func (c *credentialUseCaseWithMetrics) GenerateCredential(
	ctx context.Context,
	length int,
) (*credential.Credential, error) {
	start := time.Now()
	cred, err := c.next.GenerateCredential(ctx, length)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential_generate", status)
	c.metrics.RecordDuration(ctx, "credential_generate", time.Since(start), status)

	return cred, err
}
