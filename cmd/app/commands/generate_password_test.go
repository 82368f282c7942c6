package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cenesthesia/sentinelauth/password"
)

func TestRunGeneratePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("TextFormat", func(t *testing.T) {
		uc := newTestUseCase(t)
		var out bytes.Buffer

		err := RunGeneratePassword(ctx, uc, discardLogger(), &out, 20, "text")
		require.NoError(t, err)

		assert.Contains(t, out.String(), "User identifier:")
		assert.Contains(t, out.String(), "Password:")
	})

	t.Run("JSONFormat", func(t *testing.T) {
		uc := newTestUseCase(t)
		var out bytes.Buffer

		err := RunGeneratePassword(ctx, uc, discardLogger(), &out, 20, "json")
		require.NoError(t, err)

		var response map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &response))
		assert.NotEmpty(t, response["user_identifier"])
		assert.Len(t, response["password"], 20)

		strong := password.IsPasswordStrong([]byte(response["password"]))
		assert.True(t, strong)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		uc := newTestUseCase(t)
		var out bytes.Buffer

		err := RunGeneratePassword(ctx, uc, discardLogger(), &out, 20, "yaml")
		assert.ErrorContains(t, err, "invalid format")
	})

	t.Run("LengthTooShort", func(t *testing.T) {
		uc := newTestUseCase(t)
		var out bytes.Buffer

		err := RunGeneratePassword(ctx, uc, discardLogger(), &out, 3, "text")
		assert.ErrorIs(t, err, password.ErrPasswordTooShort)
	})
}

func TestRunGenerateSalt(t *testing.T) {
	var out bytes.Buffer

	err := RunGenerateSalt(discardLogger(), &out)
	require.NoError(t, err)

	salt, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Len(t, salt, password.SaltLength)
}
