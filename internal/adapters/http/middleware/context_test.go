package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(context.Context, string) context.Context
		get  func(context.Context) string
	}{
		{"request id", ContextWithRequestID, RequestIDFromContext},
		{"correlation id", ContextWithCorrelationID, CorrelationIDFromContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, id := range []string{"req-7f3a", "", "550e8400-e29b-41d4-a716-446655440000"} {
				ctx := tt.set(context.Background(), id)
				assert.Equal(t, id, tt.get(ctx))
			}

			assert.Empty(t, tt.get(context.Background()), "unset ID should read as empty")
		})
	}
}

func TestRequestAndCorrelationIDsCoexist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = ContextWithRequestID(ctx, "req-123")
	ctx = ContextWithCorrelationID(ctx, "corr-456")

	// The two IDs use distinct keys and must not clobber each other.
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Equal(t, "corr-456", CorrelationIDFromContext(ctx))
}
