// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the document is in a conflicting state,
	// such as not being signed yet.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates request input validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the upstream dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	Ref    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s with ref %q not found", e.Entity, e.Ref)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, ref string) error {
	return &NotFoundError{Entity: entity, Ref: ref}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// UpstreamStatusError records a non-success HTTP status received from the
// upstream document API. The status is mirrored verbatim to the caller,
// so it must survive the trip through the domain layer unchanged.
type UpstreamStatusError struct {
	// Status is the upstream HTTP status code, propagated as-is.
	Status int

	// Entity names what was being fetched, for log context.
	Entity string
}

// Error implements the error interface.
func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.Status, e.Entity)
}

// Unwrap maps well-known upstream statuses onto the matching sentinel so
// errors.Is() keeps working; everything else degrades to ErrUnavailable.
func (e *UpstreamStatusError) Unwrap() error {
	switch e.Status {
	case 400:
		return ErrValidation
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	default:
		return ErrUnavailable
	}
}

// NewUpstreamStatusError creates an upstream status error.
func NewUpstreamStatusError(status int, entity string) error {
	return &UpstreamStatusError{Status: status, Entity: entity}
}

// UpstreamStatus extracts the verbatim upstream status from err. The second
// return is false when err does not carry one.
func UpstreamStatus(err error) (int, bool) {
	var upstreamErr *UpstreamStatusError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Status, true
	}

	return 0, false
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
