// Package main is the entry point for the document viewer service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docbridge/docview/internal/adapters/clients"
	"github.com/docbridge/docview/internal/adapters/clients/acl"
	"github.com/docbridge/docview/internal/adapters/http"
	"github.com/docbridge/docview/internal/adapters/http/handlers"
	"github.com/docbridge/docview/internal/app"
	"github.com/docbridge/docview/internal/platform/config"
	"github.com/docbridge/docview/internal/platform/logging"
	"github.com/docbridge/docview/internal/platform/telemetry"
	"github.com/docbridge/docview/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging: terminal sink plus the rotating file in LOG_DIR
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Directory:  cfg.Log.File.Directory,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// Echo the resolved deployment contract so operators can compare it
	// against the environment. The redaction layer masks the password.
	logger.Info("upstream configuration",
		slog.String("api_dom", cfg.Upstream.Domain),
		slog.String("api_name", cfg.Upstream.Name),
		slog.String("base_url", cfg.Upstream.BaseURL()),
		slog.String("sys_login", cfg.Upstream.Login),
		slog.String("sys_pass", cfg.Upstream.Password),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the HTTP client for the upstream document-management API.
	// The upstream answers only requests that look like a browser carrying
	// the service account, and it presents an internal CA certificate, so
	// verification is off.
	upstreamClient, err := clients.New(&clients.Config{
		BaseURL:            cfg.Upstream.BaseURL(),
		ServiceName:        "document-api",
		Timeout:            cfg.Client.Timeout,
		Retry:              cfg.Client.Retry,
		Circuit:            cfg.Client.CircuitBreaker,
		Transport:          cfg.Client.Transport,
		InsecureSkipVerify: true,
		DefaultHeaders:     acl.BrowserHeaders(),
		AuthFunc:           acl.BasicAuth(cfg.Upstream.Login, cfg.Upstream.Password),
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("creating upstream client: %w", err)
	}

	// 7. Create document client adapter (ACL pattern)
	documentClient := acl.NewDocumentClient(acl.DocumentClientConfig{
		Client: upstreamClient,
		Logger: logger,
	})

	// Register the document client as a health checker; readiness follows
	// upstream reachability.
	if err := healthRegistry.Register(documentClient); err != nil {
		return fmt.Errorf("registering document client health check: %w", err)
	}

	// 8. Create document service (application layer)
	documentService := app.NewDocumentService(app.DocumentServiceConfig{
		Provider: documentClient,
		Logger:   logger,
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:          logger,
		AppConfig:       &cfg.App,
		HealthHandler:   healthHandler,
		DocumentHandler: documentHandler,
		Timeout:         cfg.Server.RequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence: stop accepting new requests, drain in-flight
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
