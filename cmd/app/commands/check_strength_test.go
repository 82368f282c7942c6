package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckStrength(t *testing.T) {
	t.Run("StrongPassword", func(t *testing.T) {
		ioTuple, out := testIO("GfhjK643m&Q1\n")

		err := RunCheckStrength(ioTuple)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Password is strong.")
	})

	t.Run("WeakPassword_ReturnsError", func(t *testing.T) {
		ioTuple, out := testIO("lowercaseonly\n")

		err := RunCheckStrength(ioTuple)
		assert.Error(t, err)
		assert.Contains(t, out.String(), "Password is WEAK.")
	})

	t.Run("DigitsOnly_ReturnsError", func(t *testing.T) {
		ioTuple, _ := testIO("12345678\n")

		assert.Error(t, RunCheckStrength(ioTuple))
	})
}
