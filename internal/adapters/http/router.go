package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docbridge/docview/internal/adapters/http/handlers"
	"github.com/docbridge/docview/internal/adapters/http/middleware"
	"github.com/docbridge/docview/internal/platform/config"
	"github.com/docbridge/docview/internal/platform/telemetry"
)

// RouterConfig carries everything SetupRouter wires onto an engine.
type RouterConfig struct {
	// Logger receives request logs.
	Logger *slog.Logger

	// AppConfig names the service for telemetry.
	AppConfig *config.AppConfig

	// HealthHandler serves the operational endpoints under /-.
	HealthHandler *handlers.HealthHandler

	// DocumentHandler serves the document page at the root.
	DocumentHandler *handlers.DocumentHandler

	// Timeout bounds viewer requests. Zero disables the deadline; the
	// upstream document lookup is unbounded by contract, so bounding it
	// here is a per-deployment decision.
	Timeout time.Duration
}

// SetupRouter installs the middleware chain and the route table. Recovery
// runs first so every later panic still comes back as the localized 500
// page, then the context logger seed, request and correlation IDs,
// OpenTelemetry, and request logging. Probe routes register directly on
// the engine: they are never subject to the viewer timeout and the
// logging middleware skips them.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// The page sits at the root path so links printed into documents keep
	// resolving.
	if cfg.DocumentHandler != nil {
		viewer := engine.Group("")
		if cfg.Timeout > 0 {
			viewer.Use(middleware.SimpleTimeout(cfg.Timeout))
		}

		cfg.DocumentHandler.RegisterDocumentRoutes(viewer)
	}
}

