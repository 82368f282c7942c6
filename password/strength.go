package password

import (
	"unicode"
	"unicode/utf8"
)

// IsPasswordStrong classifies a password against the engine policy: at least
// MinPasswordLength bytes, with at least one uppercase letter, one lowercase
// letter, one digit, and one special character (anything that is neither a
// letter nor a digit). It never fails: a nil or too-short buffer is simply
// weak.
//
// The buffer is wiped before IsPasswordStrong returns regardless of the
// verdict. Callers that need the password afterwards must copy it first.
func IsPasswordStrong(password []byte) bool {
	if password == nil || len(password) < MinPasswordLength {
		Zero(password)
		return false
	}
	defer Zero(password)

	var hasUpper, hasLower, hasDigit, hasSpecial bool

	// Each character counts toward at most one class, so a digit never
	// doubles as a special and a policy hole never opens up.
	for i := 0; i < len(password); {
		r, size := utf8.DecodeRune(password[i:])
		i += size

		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
