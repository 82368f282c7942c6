package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cenesthesia/sentinelauth/credential"
	"github.com/cenesthesia/sentinelauth/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:               "info",
		DefaultPasswordLength:  16,
		VerifyRateLimitEnabled: true,
		VerifyRateLimitPerSec:  5.0,
		VerifyRateLimitBurst:   10,
		DerivationPoolSize:     2,
		MetricsEnabled:         true,
		MetricsNamespace:       "sentinelauth",
		MetricsHost:            "localhost",
		MetricsPort:            8081,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger is a singleton.
func TestContainerLogger(t *testing.T) {
	container := NewContainer(testConfig())

	logger := container.Logger()
	require.NotNil(t, logger)

	// Calling Logger() again should return the same instance (singleton)
	assert.Same(t, logger, container.Logger())
}

// TestContainerMetricsProvider verifies provider initialization follows configuration.
func TestContainerMetricsProvider(t *testing.T) {
	t.Run("Enabled_ReturnsProvider", func(t *testing.T) {
		container := NewContainer(testConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.NotNil(t, provider)

		// Singleton
		again, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Same(t, provider, again)
	})

	t.Run("Disabled_ReturnsNil", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = false
		container := NewContainer(cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)
	})
}

// TestContainerBusinessMetrics verifies the recorder falls back to no-op when disabled.
func TestContainerBusinessMetrics(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		container := NewContainer(testConfig())

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, bm)
	})

	t.Run("Disabled_UsesNoOp", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = false
		container := NewContainer(cfg)

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		require.NotNil(t, bm)

		// The no-op recorder must be safe to call.
		bm.RecordOperation(context.Background(), "credential_hash", "success")
	})
}

// TestContainerUseCase verifies the use case wiring end to end.
func TestContainerUseCase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container := NewContainer(testConfig())

	uc, err := container.UseCase(ctx)
	require.NoError(t, err)
	require.NotNil(t, uc)

	// Singleton
	again, err := container.UseCase(ctx)
	require.NoError(t, err)
	assert.Same(t, uc, again)

	cred, err := credential.New("alice@example.com", []byte("Cm8&Ckqz2h6,KOH0"))
	require.NoError(t, err)

	hashed, err := uc.HashCredential(ctx, cred)
	require.NoError(t, err)
	assert.NotEmpty(t, hashed.Salt)
	assert.NotEmpty(t, hashed.Hash)
}

// TestContainerMetricsServer verifies the metrics server can be constructed.
func TestContainerMetricsServer(t *testing.T) {
	container := NewContainer(testConfig())

	server, err := container.MetricsServer()
	require.NoError(t, err)
	assert.NotNil(t, server)
}

// TestContainerShutdown verifies shutdown with initialized components.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(testConfig())

	_, err := container.MetricsProvider()
	require.NoError(t, err)

	assert.NoError(t, container.Shutdown(context.Background()))
}
