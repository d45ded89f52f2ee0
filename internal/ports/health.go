package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when a second checker registers under an
// already taken name.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker reports whether one dependency of the service is usable.
// The document client registers one for upstream reachability; a nil return
// from Check means healthy.
type HealthChecker interface {
	// Name identifies the component in readiness responses.
	Name() string

	// Check probes the component. Implementations must respect ctx.
	Check(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and probes them all when the
// readiness endpoint asks.
type HealthRegistry interface {
	// Register adds a checker. Names must be unique.
	Register(checker HealthChecker) error

	// CheckAll probes every registered checker concurrently and aggregates
	// the outcome.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the overall or per-component health state.
type HealthStatus string

const (
	// HealthStatusHealthy means every probe passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy means at least one probe failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the aggregated outcome of one CheckAll pass. It marshals
// directly into the readiness response body.
type HealthResult struct {
	Status HealthStatus `json:"status"`

	// Checks holds per-component outcomes keyed by checker name.
	Checks map[string]*CheckResult `json:"checks"`

	Timestamp time.Time `json:"timestamp"`
}

// CheckResult is the outcome of a single probe.
type CheckResult struct {
	Status HealthStatus `json:"status"`

	// Message carries the probe error text when the component is unhealthy.
	Message string `json:"message,omitempty"`

	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is the standard HealthRegistry implementation.
// Registration happens once during startup; CheckAll may run concurrently
// with itself afterwards.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers: make([]HealthChecker, 0),
	}
}

// Register adds a checker, rejecting duplicate names so a readiness
// response never silently overwrites one component's result with another's.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	taken := slices.ContainsFunc(r.checkers, func(c HealthChecker) bool {
		return c.Name() == name
	})
	if taken {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll probes every checker in its own goroutine and folds the
// outcomes together once all have finished. A single failed probe marks
// the whole result unhealthy.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	outcomes := make([]*CheckResult, len(checkers))

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)

		go func(i int, c HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := c.Check(ctx)

			outcome := &CheckResult{
				Status:   HealthStatusHealthy,
				Duration: time.Since(start),
			}
			if err != nil {
				outcome.Status = HealthStatusUnhealthy
				outcome.Message = err.Error()
			}

			outcomes[i] = outcome
		}(i, checker)
	}
	wg.Wait()

	for i, checker := range checkers {
		result.Checks[checker.Name()] = outcomes[i]
		if outcomes[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}
