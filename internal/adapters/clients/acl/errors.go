package acl

import (
	"errors"
	"fmt"

	"github.com/docbridge/docview/internal/adapters/clients"
	"github.com/docbridge/docview/internal/domain"
)

// MapClientError translates a transport-level client failure to a domain
// error. The upstream never answered, so every variant lands on
// ErrUnavailable; the reason distinguishes circuit breaker rejections and
// exhausted retries from plain connection failures.
func MapClientError(err error, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}
