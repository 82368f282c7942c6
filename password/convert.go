package password

import (
	"unicode/utf8"
)

// PasswordToBytes converts a character-form password into its UTF-8 byte
// representation without routing the secret through an immutable string. The
// rune input is wiped before PasswordToBytes returns, on every exit path.
//
// Errors: ErrInvalidArgument when the input is nil or empty.
func PasswordToBytes(password []rune) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrPasswordEmpty
	}
	defer ZeroRunes(password)

	buf := make([]byte, 0, len(password)*utf8.UTFMax)
	for _, r := range password {
		buf = utf8.AppendRune(buf, r)
	}
	return buf, nil
}

// BytesToPassword restores a character-form password from its UTF-8 byte
// representation.
//
// Deprecated: this reverse conversion reintroduces un-wiped secret material -
// the byte input is NOT wiped, the restoration is lossy for invalid UTF-8,
// and keeping recoverable password bytes around defeats the storage model.
// It exists only as a compatibility path and should not be used in new code.
func BytesToPassword(bytes []byte) ([]rune, error) {
	if len(bytes) == 0 {
		return nil, ErrPasswordEmpty
	}

	out := make([]rune, 0, len(bytes))
	for i := 0; i < len(bytes); {
		r, size := utf8.DecodeRune(bytes[i:])
		out = append(out, r)
		i += size
	}
	return out, nil
}
