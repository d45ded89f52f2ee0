package clients

import (
	"sync"
	"time"
)

// State is the circuit breaker state.
type State int

const (
	// StateClosed lets every request through. Normal operation.
	StateClosed State = iota

	// StateOpen blocks every request. Entered after too many consecutive
	// failures, so a struggling upstream is not hammered further.
	StateOpen

	// StateHalfOpen lets a limited number of probe requests through to
	// find out whether the upstream has recovered.
	StateHalfOpen
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures the circuit breaker behavior.
type CircuitBreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures int

	// Timeout is how long the circuit stays open before probing again.
	Timeout time.Duration

	// HalfOpenLimit caps concurrent probes in half-open state and is also
	// the number of consecutive probe successes needed to close the circuit.
	HalfOpenLimit int
}

// CircuitBreaker guards calls to a downstream service. The document client
// wires one in front of the upstream document-management API when the
// deployment enables it; with the breaker open, lookups fail fast with
// ErrCircuitOpen instead of queueing behind a dead upstream.
//
// Transitions:
//   - closed -> open after MaxFailures consecutive failures
//   - open -> half-open once Timeout has elapsed since the last failure
//   - half-open -> closed after HalfOpenLimit consecutive probe successes
//   - half-open -> open on any probe failure
type CircuitBreaker struct {
	mu             sync.RWMutex
	state          State
	consecFailures int       // consecutive failures while closed
	probeSuccesses int       // consecutive successes while half-open
	probesInFlight int       // probes currently running while half-open
	lastFailureAt  time.Time // basis for the open-state timeout
	cfg            CircuitBreakerConfig

	notify func(from, to State)

	// now is overridable for tests.
	now func() time.Time
}

// NewCircuitBreaker creates a circuit breaker in the closed state.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		state: StateClosed,
		cfg:   cfg,
		now:   time.Now,
	}
}

// OnStateChange registers a callback invoked on every state transition.
// The callback runs on its own goroutine.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.notify = fn
}

// Allow reports whether a request may proceed. An open circuit whose timeout
// has elapsed flips to half-open here and admits the caller as the first
// probe; in half-open state at most HalfOpenLimit probes run at once.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true

	case StateOpen:
		if cb.now().Sub(cb.lastFailureAt) >= cb.cfg.Timeout {
			cb.setState(StateHalfOpen)
			cb.probesInFlight = 1

			return true
		}

		return false

	case StateHalfOpen:
		if cb.probesInFlight >= cb.cfg.HalfOpenLimit {
			return false
		}
		cb.probesInFlight++

		return true

	default:
		return false
	}
}

// RecordSuccess records a successful request. While closed it clears the
// failure streak; while half-open it counts toward closing the circuit.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.consecFailures = 0

	case StateHalfOpen:
		cb.probesInFlight--
		cb.probeSuccesses++

		if cb.probeSuccesses >= cb.cfg.HalfOpenLimit {
			cb.setState(StateClosed)
		}
	}
}

// RecordFailure records a failed request. While closed it may open the
// circuit; while half-open a single failure reopens it immediately.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureAt = cb.now()

	switch cb.state {
	case StateClosed:
		cb.consecFailures++
		if cb.consecFailures >= cb.cfg.MaxFailures {
			cb.setState(StateOpen)
		}

	case StateHalfOpen:
		cb.probesInFlight--
		cb.setState(StateOpen)
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.state
}

// setState transitions to a new state and resets the counters.
// Callers must hold the lock.
func (cb *CircuitBreaker) setState(next State) {
	if cb.state == next {
		return
	}

	prev := cb.state
	cb.state = next

	cb.consecFailures = 0
	cb.probeSuccesses = 0
	cb.probesInFlight = 0

	if cb.notify != nil {
		// Run the callback off the lock.
		go cb.notify(prev, next)
	}
}
