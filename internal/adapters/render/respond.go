package render

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/docbridge/docview/internal/domain"
	"github.com/docbridge/docview/internal/platform/logging"
)

// StatusFor maps a domain error to the HTTP status of the error contract.
// Upstream status errors mirror their verbatim code; sentinel classes map
// to the fixed codes. Unknown errors are internal.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if status, ok := domain.UpstreamStatus(err); ok {
		return status
	}

	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error maps err onto the error contract and writes the localized error
// page. The response status and the message row are resolved independently,
// so an unknown upstream code keeps its number while borrowing the
// service-unavailable text.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)

	// Client-class failures already surface in the request completion log;
	// server-class ones get full detail here.
	if status >= http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())

		var traceID string
		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
			traceID = span.SpanContext().TraceID().String()
		}

		logger.Error("request failed",
			slog.Int("code", status),
			slog.Any("error", err),
			slog.String("trace_id", traceID),
		)
	}

	ErrorPage(c, status)
}

// ErrorPage writes the localized error page for an explicit status without
// logging. Meant for middleware that has already reported the failure, such
// as panic recovery.
func ErrorPage(c *gin.Context, status int) {
	loc := ResolveLocale(c.GetHeader("Accept-Language"))

	c.HTML(status, TemplateError, NewErrorView(status, loc))
}

// Document writes the document page for doc in the request's locale.
func Document(c *gin.Context, doc *domain.Document) {
	loc := ResolveLocale(c.GetHeader("Accept-Language"))

	c.HTML(http.StatusOK, TemplateDocument, NewDocumentView(doc, loc))
}
