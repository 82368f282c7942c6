// Package validation provides custom validation rules for the application.
//
// Rules here cover non-secret inputs only (identifiers, lengths). Password
// strength is checked by the password package directly on byte buffers -
// string-typed validation rules would copy secret material into immutable
// strings that can never be wiped.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/cenesthesia/sentinelauth/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidArgument.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidArgument, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace.
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
