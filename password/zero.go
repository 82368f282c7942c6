package password

// Zero securely overwrites a byte slice with zeros to clear sensitive data
// from memory. It is idempotent and safe to call on a nil or empty slice.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// ZeroRunes securely overwrites a rune slice with zeros. Character-form
// passwords are wiped with this before the engine lets go of them. It is
// idempotent and safe to call on a nil or empty slice.
func ZeroRunes(r []rune) {
	if r == nil {
		return
	}
	for i := range r {
		r[i] = 0
	}
}
