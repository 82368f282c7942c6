package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cenesthesia/sentinelauth/internal/app"
	"github.com/cenesthesia/sentinelauth/internal/config"
)

// RunMetricsServer starts the Prometheus metrics server with graceful
// shutdown support. Blocks until receiving SIGINT/SIGTERM or encountering a
// fatal error.
func RunMetricsServer(ctx context.Context, version string) error {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on log level
	gin.SetMode(cfg.GetGinMode())

	// Create DI container
	container := app.NewContainer(cfg)

	// Get logger from container
	logger := container.Logger()
	logger.Info("starting metrics server", slog.String("version", version))

	// Ensure cleanup on exit
	defer closeContainer(container, logger)

	if !cfg.MetricsEnabled {
		return fmt.Errorf("metrics are disabled, set METRICS_ENABLED=true")
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown: %w", err)
		}

		logger.Info("metrics server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
