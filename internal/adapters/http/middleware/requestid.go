// Package middleware is the viewer's request pipeline: panic recovery,
// request and correlation IDs, request logging and the optional request
// deadline.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/docbridge/docview/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key holding the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID tags every request with an ID: reused from the X-Request-ID
// header when the caller sent one, minted as a UUID otherwise. The ID is
// echoed on the response, tagged onto the context logger, and stored in the
// request context so the upstream client repeats it on the document API
// call.
func RequestID() gin.HandlerFunc {
	return newIDMiddleware(idConfig{
		header: HeaderRequestID,
		ginKey: ContextKeyRequestID,
		enrich: []func(ctx context.Context, id string) context.Context{
			ContextWithRequestID,
			logging.WithRequestID,
		},
	})
}

// GetRequestID reads the request ID from the gin context. Empty when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	return idFromGin(c, ContextKeyRequestID)
}
