// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/cenesthesia/sentinelauth/password"
)

// Config holds all application configuration.
//
// Engine parameters (iteration count, key length, salt length) are
// intentionally absent: they are fixed constants of the password package and
// making them configurable would be a weak-parameter footgun.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// DefaultPasswordLength is the length used by the generate-password
	// command when no length flag is given.
	DefaultPasswordLength int

	// VerifyRateLimitEnabled indicates whether per-identifier rate limiting
	// of verification attempts is enabled.
	VerifyRateLimitEnabled bool
	// VerifyRateLimitPerSec is the number of verification attempts allowed
	// per second per user identifier.
	VerifyRateLimitPerSec float64
	// VerifyRateLimitBurst is the burst size for verification rate limiting.
	VerifyRateLimitBurst int

	// DerivationPoolSize is the maximum number of concurrent key derivations.
	// Derivation is CPU-bound by design, so the default tracks GOMAXPROCS.
	DerivationPoolSize int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsHost is the host address the metrics server will bind to.
	MetricsHost string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Password generation
		DefaultPasswordLength: env.GetInt(
			"DEFAULT_PASSWORD_LENGTH",
			password.DefaultPasswordLength,
		),

		// Verification rate limiting
		VerifyRateLimitEnabled: env.GetBool("VERIFY_RATE_LIMIT_ENABLED", true),
		VerifyRateLimitPerSec:  env.GetFloat64("VERIFY_RATE_LIMIT_PER_SEC", 5.0),
		VerifyRateLimitBurst:   env.GetInt("VERIFY_RATE_LIMIT_BURST", 10),

		// Derivation scheduling
		DerivationPoolSize: env.GetInt("DERIVATION_POOL_SIZE", runtime.GOMAXPROCS(0)),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "sentinelauth"),
		MetricsHost:      env.GetString("METRICS_HOST", "0.0.0.0"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
