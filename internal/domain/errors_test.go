package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		ref         string
		expectedMsg string
	}{
		{
			name:        "with entity and ref",
			entity:      "document",
			ref:         "000000123",
			expectedMsg: `document with ref "000000123" not found`,
		},
		{
			name:        "with entity only",
			entity:      "document",
			ref:         "",
			expectedMsg: "document not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.ref)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.ref, notFound.Ref)
		})
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("document", "not signed")

	assert.Equal(t, "document conflict: not signed", err.Error())
	require.ErrorIs(t, err, ErrConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "document", conflict.Entity)
	assert.Equal(t, "not signed", conflict.Reason)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "ref",
			message:     "must not be empty",
			expectedMsg: "validation failed for ref: must not be empty",
		},
		{
			name:        "without field",
			field:       "",
			message:     "type and ref are required",
			expectedMsg: "validation failed: type and ref are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestUnavailableError(t *testing.T) {
	tests := []struct {
		name        string
		service     string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with reason",
			service:     "document-api",
			reason:      "connection refused",
			expectedMsg: `service "document-api" unavailable: connection refused`,
		},
		{
			name:        "without reason",
			service:     "document-api",
			reason:      "",
			expectedMsg: `service "document-api" unavailable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnavailableError(tt.service, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrUnavailable)

			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.service, unavailable.Service)
			assert.Equal(t, tt.reason, unavailable.Reason)
		})
	}
}

func TestUpstreamStatusError_SentinelMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"400 maps to validation", 400, ErrValidation},
		{"404 maps to not found", 404, ErrNotFound},
		{"409 maps to conflict", 409, ErrConflict},
		{"500 maps to unavailable", 500, ErrUnavailable},
		{"unknown status maps to unavailable", 418, ErrUnavailable},
		{"503 maps to unavailable", 503, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUpstreamStatusError(tt.status, "document")

			require.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestUpstreamStatus(t *testing.T) {
	t.Run("extracts verbatim status", func(t *testing.T) {
		err := NewUpstreamStatusError(418, "document")

		status, ok := UpstreamStatus(err)
		require.True(t, ok)
		assert.Equal(t, 418, status)
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetching: %w", NewUpstreamStatusError(409, "document"))

		status, ok := UpstreamStatus(err)
		require.True(t, ok)
		assert.Equal(t, 409, status)
	})

	t.Run("absent on plain domain errors", func(t *testing.T) {
		_, ok := UpstreamStatus(NewNotFoundError("document", "1"))
		assert.False(t, ok)
	})

	t.Run("absent on nil", func(t *testing.T) {
		_, ok := UpstreamStatus(nil)
		assert.False(t, ok)
	})
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("document", "1"), IsNotFound, true},
		{"IsNotFound with sentinel", ErrNotFound, IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with upstream 404", NewUpstreamStatusError(404, "document"), IsNotFound, true},
		{"IsNotFound with other error", ErrConflict, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsConflict with ConflictError", NewConflictError("document", "not signed"), IsConflict, true},
		{"IsConflict with sentinel", ErrConflict, IsConflict, true},
		{"IsConflict with upstream 409", NewUpstreamStatusError(409, "document"), IsConflict, true},
		{"IsConflict with other error", ErrNotFound, IsConflict, false},
		{"IsConflict with nil", nil, IsConflict, false},

		{"IsValidation with ValidationError", NewValidationError("type", "empty"), IsValidation, true},
		{"IsValidation with sentinel", ErrValidation, IsValidation, true},
		{"IsValidation with wrapped", fmt.Errorf("wrapped: %w", ErrValidation), IsValidation, true},
		{"IsValidation with other error", ErrNotFound, IsValidation, false},
		{"IsValidation with nil", nil, IsValidation, false},

		{"IsUnavailable with UnavailableError", NewUnavailableError("document-api", "down"), IsUnavailable, true},
		{"IsUnavailable with sentinel", ErrUnavailable, IsUnavailable, true},
		{"IsUnavailable with unknown upstream status", NewUpstreamStatusError(502, "document"), IsUnavailable, true},
		{"IsUnavailable with other error", ErrNotFound, IsUnavailable, false},
		{"IsUnavailable with nil", nil, IsUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	t.Run("deeply wrapped NotFoundError", func(t *testing.T) {
		original := NewNotFoundError("document", "000000123")
		wrapped1 := fmt.Errorf("layer1: %w", original)
		wrapped2 := fmt.Errorf("layer2: %w", wrapped1)

		assert.True(t, IsNotFound(wrapped2))

		var notFound *NotFoundError
		require.ErrorAs(t, wrapped2, &notFound)
		assert.Equal(t, "000000123", notFound.Ref)
		assert.Equal(t, "document", notFound.Entity)
	})

	t.Run("deeply wrapped UpstreamStatusError", func(t *testing.T) {
		original := NewUpstreamStatusError(418, "document")
		wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", original))

		assert.True(t, IsUnavailable(wrapped))

		status, ok := UpstreamStatus(wrapped)
		require.True(t, ok)
		assert.Equal(t, 418, status)
	})

	t.Run("deeply wrapped UnavailableError", func(t *testing.T) {
		original := NewUnavailableError("document-api", "connection refused")
		wrapped := fmt.Errorf("fetch: %w", original)

		assert.True(t, IsUnavailable(wrapped))

		var unavailable *UnavailableError
		require.ErrorAs(t, wrapped, &unavailable)
		assert.Equal(t, "document-api", unavailable.Service)
	})
}
