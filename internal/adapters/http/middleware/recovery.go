package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/docbridge/docview/internal/adapters/render"
)

// Recovery turns a panic anywhere below it into the localized 500 page.
// The stack goes to the injected logger, tagged with whatever IDs the
// chain had set by the time of the panic. Runs first so it also covers
// the other middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var traceID string
				if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
					traceID = span.SpanContext().TraceID().String()
				}

				logger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
					slog.String("correlation_id", GetCorrelationID(c)),
					slog.String("trace_id", traceID),
				)

				// The handler may have started writing before it panicked.
				if !c.Writer.Written() {
					render.ErrorPage(c, http.StatusInternalServerError)
				}

				c.Abort()
			}
		}()

		c.Next()
	}
}
