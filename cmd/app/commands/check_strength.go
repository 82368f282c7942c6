package commands

import (
	"fmt"

	"github.com/cenesthesia/sentinelauth/password"
)

// RunCheckStrength reads a password from the input and reports whether it
// satisfies the strength policy. The strength check consumes the buffer, so
// nothing is left to wipe afterwards. A weak password returns an error so the
// process exits non-zero.
func RunCheckStrength(ioTuple IOTuple) error {
	pw, err := readPassword(ioTuple, "Password: ")
	if err != nil {
		return err
	}

	strong := password.IsPasswordStrong(pw)

	fmt.Fprintln(ioTuple.Writer)
	if !strong {
		fmt.Fprintf(ioTuple.Writer, "Password is WEAK.\n")
		fmt.Fprintf(
			ioTuple.Writer,
			"A strong password has at least %d characters and contains uppercase, lowercase, digit, and special characters.\n",
			password.MinPasswordLength,
		)
		return fmt.Errorf("password does not meet the strength policy")
	}

	fmt.Fprintln(ioTuple.Writer, "Password is strong.")

	return nil
}
