package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/cenesthesia/sentinelauth/errors"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("user@example.com", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, validation.Validate("user@example.com", NoWhitespace))
	assert.Error(t, validation.Validate(" user@example.com", NoWhitespace))
	assert.Error(t, validation.Validate("user@example.com ", NoWhitespace))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})

	t.Run("wrapped error carries the sentinel", func(t *testing.T) {
		err := WrapValidationError(validation.Validate("", NotBlank))
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}
