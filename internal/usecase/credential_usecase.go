package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/cenesthesia/sentinelauth/credential"
	apperrors "github.com/cenesthesia/sentinelauth/errors"
	appValidation "github.com/cenesthesia/sentinelauth/internal/validation"
	"github.com/cenesthesia/sentinelauth/password"
)

// VerifyLimitConfig configures per-identifier throttling of verification
// attempts.
type VerifyLimitConfig struct {
	Enabled bool
	PerSec  float64
	Burst   int
}

// CredentialUseCase handles credential-related business logic on top of the
// password engine.
type CredentialUseCase struct {
	pool    *DerivationPool
	limiter *verifyLimiterStore
}

// NewCredentialUseCase creates a new CredentialUseCase. The context bounds the
// lifetime of the limiter's cleanup goroutine and should stay alive as long
// as the use case is in service.
func NewCredentialUseCase(
	ctx context.Context,
	pool *DerivationPool,
	limitCfg VerifyLimitConfig,
) UseCase {
	uc := &CredentialUseCase{pool: pool}

	if limitCfg.Enabled {
		uc.limiter = newVerifyLimiterStore(ctx, limitCfg.PerSec, limitCfg.Burst)
	}

	return uc
}

// validateUserIdentifier validates the non-secret half of a credential. The
// password never goes through string-typed validation rules.
func validateUserIdentifier(userIdentifier string) error {
	err := validation.Validate(userIdentifier,
		validation.Required.Error("user identifier is required"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("user identifier must be between 1 and 255 characters"),
	)
	return appValidation.WrapValidationError(err)
}

// HashCredential enforces the strength policy, generates a fresh salt, and
// derives the storable key. The credential's password buffer is wiped before
// HashCredential returns, on every exit path.
func (uc *CredentialUseCase) HashCredential(
	ctx context.Context,
	cred *credential.Credential,
) (*HashedCredential, error) {
	if cred == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidArgument, "credential cannot be nil")
	}
	defer cred.ClearPassword()

	if err := validateUserIdentifier(cred.UserIdentifier()); err != nil {
		return nil, err
	}

	pw := cred.Password()
	if len(pw) == 0 {
		return nil, password.ErrPasswordEmpty
	}

	// IsPasswordStrong wipes its input, so the policy check runs on a copy
	// and the original stays available for the derivation.
	working := make([]byte, len(pw))
	copy(working, pw)
	if !password.IsPasswordStrong(working) {
		return nil, ErrPasswordWeak
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate salt")
	}

	hash, err := uc.pool.DeriveKey(ctx, pw, salt)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to derive key")
	}

	return &HashedCredential{
		UserIdentifier: cred.UserIdentifier(),
		Salt:           salt,
		Hash:           hash,
	}, nil
}

// VerifyCredential validates the credential's password against a stored hash
// and salt. Attempts are throttled per user identifier before any derivation
// work is spent. The credential's password buffer is wiped before
// VerifyCredential returns, on every exit path.
func (uc *CredentialUseCase) VerifyCredential(
	ctx context.Context,
	cred *credential.Credential,
	storedHash, salt []byte,
) (bool, error) {
	if cred == nil {
		return false, apperrors.Wrap(apperrors.ErrInvalidArgument, "credential cannot be nil")
	}
	defer cred.ClearPassword()

	if err := validateUserIdentifier(cred.UserIdentifier()); err != nil {
		return false, err
	}

	if uc.limiter != nil && !uc.limiter.allow(cred.UserIdentifier()) {
		return false, ErrVerificationThrottled
	}

	return uc.pool.VerifyPassword(ctx, cred.Password(), storedHash, salt)
}

// GenerateCredential provisions a credential with a system-assigned UUIDv7
// identifier and a generated policy-satisfying password of the given length.
func (uc *CredentialUseCase) GenerateCredential(
	ctx context.Context,
	length int,
) (*credential.Credential, error) {
	pw, err := password.GeneratePassword(length)
	if err != nil {
		return nil, err
	}

	return credential.NewWithGeneratedID(pw), nil
}
