// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
package ports

import (
	"context"

	"github.com/docbridge/docview/internal/domain"
)

// DocumentProvider fetches document data from the upstream
// document-management system.
type DocumentProvider interface {
	// GetDocument retrieves a document by its type and reference.
	//
	// Error contract:
	//   - transport failure: domain.ErrUnavailable
	//   - any non-200 upstream status: *domain.UpstreamStatusError carrying
	//     the verbatim status (404 and 409 additionally satisfy
	//     domain.ErrNotFound / domain.ErrConflict)
	GetDocument(ctx context.Context, docType, ref string) (*domain.Document, error)
}
