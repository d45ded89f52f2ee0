package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/docbridge/docview/internal/platform/logging"
)

const (
	// HeaderCorrelationID carries the cross-service transaction ID. Where
	// the request ID names one request, the correlation ID follows the
	// whole business transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID propagates the transaction ID: reused from the
// X-Correlation-ID header when a caller passed one through, minted as a
// UUID when this service is the transaction origin. Handling mirrors
// RequestID: response header, context logger, and the request context for
// outbound propagation.
func CorrelationID() gin.HandlerFunc {
	return newIDMiddleware(idConfig{
		header: HeaderCorrelationID,
		ginKey: ContextKeyCorrelationID,
		enrich: []func(ctx context.Context, id string) context.Context{
			ContextWithCorrelationID,
			logging.WithCorrelationID,
		},
	})
}

// GetCorrelationID reads the correlation ID from the gin context. Empty
// when the middleware did not run.
func GetCorrelationID(c *gin.Context) string {
	return idFromGin(c, ContextKeyCorrelationID)
}
