package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cenesthesia/sentinelauth/password"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, password.DefaultPasswordLength, cfg.DefaultPasswordLength)
		assert.True(t, cfg.VerifyRateLimitEnabled)
		assert.Equal(t, 5.0, cfg.VerifyRateLimitPerSec)
		assert.Equal(t, 10, cfg.VerifyRateLimitBurst)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, "sentinelauth", cfg.MetricsNamespace)
		assert.Equal(t, 8081, cfg.MetricsPort)
		assert.Greater(t, cfg.DerivationPoolSize, 0)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DEFAULT_PASSWORD_LENGTH", "24")
		t.Setenv("VERIFY_RATE_LIMIT_ENABLED", "false")
		t.Setenv("METRICS_NAMESPACE", "testapp")
		t.Setenv("DERIVATION_POOL_SIZE", "4")

		cfg := Load()

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 24, cfg.DefaultPasswordLength)
		assert.False(t, cfg.VerifyRateLimitEnabled)
		assert.Equal(t, "testapp", cfg.MetricsNamespace)
		assert.Equal(t, 4, cfg.DerivationPoolSize)
	})
}

func TestGetGinMode(t *testing.T) {
	cases := []struct {
		logLevel string
		want     string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tc := range cases {
		t.Run(tc.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tc.logLevel}
			assert.Equal(t, tc.want, cfg.GetGinMode())
		})
	}
}
