// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/docbridge/docview/internal/domain"
	"github.com/docbridge/docview/internal/ports"
)

// DocumentService orchestrates the document lookup use case.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type DocumentService struct {
	provider ports.DocumentProvider
	logger   *slog.Logger
}

// DocumentServiceConfig contains configuration for the document service.
type DocumentServiceConfig struct {
	Provider ports.DocumentProvider
	Logger   *slog.Logger
}

// NewDocumentService creates a new document service with the provided dependencies.
func NewDocumentService(cfg DocumentServiceConfig) *DocumentService {
	return &DocumentService{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// GetDocument retrieves a document by type and reference.
//
// Both parameters are required; an empty value fails with
// domain.ErrValidation before any upstream call is made. Provider errors
// pass through untranslated, so the transport layer can mirror upstream
// statuses.
func (s *DocumentService) GetDocument(ctx context.Context, docType, ref string) (*domain.Document, error) {
	if docType == "" || ref == "" {
		s.logger.WarnContext(ctx, "document lookup rejected",
			slog.Bool("type_present", docType != ""),
			slog.Bool("ref_present", ref != ""),
		)

		return nil, domain.NewValidationError("", "query parameters type and ref are required")
	}

	s.logger.InfoContext(ctx, "fetching document",
		slog.String("doc_type", docType),
		slog.String("ref", ref),
	)

	doc, err := s.provider.GetDocument(ctx, docType, ref)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch document",
			slog.String("doc_type", docType),
			slog.String("ref", ref),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "fetched document",
		slog.String("doc_type", docType),
		slog.String("ref", ref),
		slog.String("document_number", doc.Details.Number),
		slog.Bool("signed", doc.Signature != nil),
	)

	return doc, nil
}
