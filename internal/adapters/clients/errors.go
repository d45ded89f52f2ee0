// Package clients provides the instrumented HTTP client used to reach the
// upstream document-management API.
package clients

import "errors"

// Transport-level failures. The anti-corruption layer translates these into
// domain errors before they reach the application.
var (
	// ErrCircuitOpen is returned when the circuit breaker blocks a request
	// because the upstream is considered unhealthy.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned once every attempt has failed.
	// The final attempt's error is attached.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
