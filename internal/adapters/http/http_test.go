package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docview/internal/adapters/http/handlers"
	"github.com/docbridge/docview/internal/adapters/render"
	"github.com/docbridge/docview/internal/app"
	"github.com/docbridge/docview/internal/domain"
	"github.com/docbridge/docview/internal/platform/config"
	"github.com/docbridge/docview/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubProvider implements ports.DocumentProvider for router tests.
type stubProvider struct {
	doc         *domain.Document
	err         error
	sawDeadline bool
}

func (s *stubProvider) GetDocument(ctx context.Context, _, _ string) (*domain.Document, error) {
	_, s.sawDeadline = ctx.Deadline()

	if s.err != nil {
		return nil, s.err
	}

	return s.doc, nil
}

func sampleDocument() *domain.Document {
	return &domain.Document{
		Details: domain.Details{
			Name:             "Приказ о командировке",
			Number:           "000000117",
			RegistrationDate: "14.06.2024",
			RegisteredBy:     "Иванова А.П.",
		},
		Signature: &domain.Signature{
			SignedBy: "Петров В.В.",
			SignedAt: "14.06.2024 10:15:00",
		},
	}
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newViewerEngine builds a server engine with the full router wired to a stub
// document provider, the same way main assembles the service.
func newViewerEngine(t *testing.T, provider *stubProvider, timeout time.Duration) *gin.Engine {
	t.Helper()

	logger := discardLogger()
	srv := New(testServerConfig(), logger)

	service := app.NewDocumentService(app.DocumentServiceConfig{
		Provider: provider,
		Logger:   logger,
	})

	cfg := RouterConfig{
		Logger: logger,
		AppConfig: &config.AppConfig{
			Name:        "docview-test",
			Environment: "test",
			Version:     "0.0.0",
		},
		HealthHandler:   handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{Version: "0.0.0"}),
		DocumentHandler: handlers.NewDocumentHandler(service),
		Timeout:         timeout,
	}

	SetupRouter(srv.Engine(), cfg)

	return srv.Engine()
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig()
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	require.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}

// TestServerNew_InstallsTemplates verifies the page templates are usable on
// a fresh engine without further setup.
func TestServerNew_InstallsTemplates(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().GET("/boom", func(c *gin.Context) {
		render.ErrorPage(c, http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>404</h1>")
	assert.Contains(t, w.Body.String(), "Document not found")
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{name: "hostname", host: "localhost", port: 8080, want: "localhost:8080"},
		{name: "wildcard", host: "0.0.0.0", port: 3000, want: "0.0.0.0:3000"},
		{name: "ipv6 loopback", host: "::1", port: 8080, want: "[::1]:8080"},
		{name: "dynamic port", host: "127.0.0.1", port: 0, want: "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testServerConfig()
			cfg.Host = tt.host
			cfg.Port = tt.port

			srv := New(cfg, discardLogger())

			assert.Equal(t, tt.want, srv.Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	errCh := srv.Start()

	time.Sleep(100 * time.Millisecond)

	select {
	case err := <-errCh:
		t.Fatalf("server failed to start: %v", err)
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case _, ok := <-errCh:
		assert.False(t, ok, "error channel should be closed after shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for the listener to stop")
	}
}

func TestSetupRouter(t *testing.T) {
	t.Run("registers viewer and health routes", func(t *testing.T) {
		engine := newViewerEngine(t, &stubProvider{doc: sampleDocument()}, 0)

		routeMap := make(map[string]bool)
		for _, route := range engine.Routes() {
			routeMap[route.Method+" "+route.Path] = true
		}

		assert.True(t, routeMap["GET /"], "viewer route should be registered")
		assert.True(t, routeMap["GET /-/live"], "health routes should be registered")
		assert.True(t, routeMap["GET /-/ready"], "health routes should be registered")
	})

	t.Run("serves the document page", func(t *testing.T) {
		engine := newViewerEngine(t, &stubProvider{doc: sampleDocument()}, 0)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?type=order&ref=000000117", nil)
		req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Приказ о командировке")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "ID middleware should run")
	})

	t.Run("rejects missing parameters with localized page", func(t *testing.T) {
		engine := newViewerEngine(t, &stubProvider{doc: sampleDocument()}, 0)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?type=order", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or missing query parameters: `type` and `ref` are required.")
	})

	t.Run("mirrors upstream not found", func(t *testing.T) {
		provider := &stubProvider{err: domain.NewUpstreamStatusError(http.StatusNotFound, "document")}
		engine := newViewerEngine(t, provider, 0)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?type=order&ref=missing", nil)
		req.Header.Set("Accept-Language", "ru")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Документ не найден")
	})

	t.Run("health probes bypass the viewer", func(t *testing.T) {
		engine := newViewerEngine(t, &stubProvider{doc: sampleDocument()}, 0)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// TestSetupRouter_ViewerTimeout verifies that the request deadline reaches
// the document provider only when a timeout is configured.
func TestSetupRouter_ViewerTimeout(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		wantDeadline bool
	}{
		{
			name:         "configured timeout sets a deadline",
			timeout:      5 * time.Second,
			wantDeadline: true,
		},
		{
			name:         "zero timeout leaves the lookup unbounded",
			timeout:      0,
			wantDeadline: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{doc: sampleDocument()}
			engine := newViewerEngine(t, provider, tt.timeout)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?type=order&ref=000000117", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantDeadline, provider.sawDeadline)
		})
	}
}

// TestSetupRouterWithNilHandlers covers partial wiring, as in a setup that
// exercises middleware without routes.
func TestSetupRouterWithNilHandlers(t *testing.T) {
	engine := gin.New()

	cfg := RouterConfig{
		Logger: discardLogger(),
		AppConfig: &config.AppConfig{
			Name:        "docview-test",
			Environment: "test",
			Version:     "0.0.0",
		},
	}

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})

	assert.Empty(t, engine.Routes())
}

func TestMaxBodySize(t *testing.T) {
	cfg := testServerConfig()
	cfg.MaxRequestSize = 100

	srv := New(cfg, discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "body too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	t.Run("body under limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 50)))
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("body over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 200)))
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
