package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idConfig describes one tracked ID: the header it travels in, the gin
// context key it is stored under, and the enrichers that copy it into the
// request context.
type idConfig struct {
	header string
	ginKey string

	// enrich runs in order against the request context. Used to stash the
	// ID for outbound propagation and to tag the context logger.
	enrich []func(ctx context.Context, id string) context.Context
}

// newIDMiddleware builds the shared machinery behind RequestID and
// CorrelationID: reuse the inbound header value or mint a UUID, echo it on
// the response, and thread it through the gin and request contexts.
func newIDMiddleware(cfg idConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(cfg.ginKey, id)
		c.Header(cfg.header, id)

		ctx := c.Request.Context()
		for _, enrich := range cfg.enrich {
			ctx = enrich(ctx, id)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// idFromGin reads a string ID out of the gin context.
func idFromGin(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}

	return ""
}
