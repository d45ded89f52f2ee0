package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/docbridge/docview/internal/adapters/clients"
	"github.com/docbridge/docview/internal/domain"
	"github.com/docbridge/docview/internal/platform/logging"
)

const (
	// documentEntity names what this adapter fetches, for error context.
	documentEntity = "document"

	// serviceName identifies the upstream in logs, health checks, and errors.
	serviceName = "document-api"
)

// DocumentClientConfig contains configuration for the document client.
type DocumentClientConfig struct {
	// Client is the HTTP client to use for requests. Its BaseURL must point
	// at the published document API endpoint ({domain}/{name}).
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// DocumentClient implements ports.DocumentProvider against the upstream
// document-management API. It is the translation boundary: the Russian
// section names of the upstream payload never leave this package.
type DocumentClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewDocumentClient creates a new document client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewDocumentClient(cfg DocumentClientConfig) *DocumentClient {
	if cfg.Client == nil {
		panic("DocumentClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DocumentClient{
		client: cfg.Client,
		logger: logger,
	}
}

// GetDocument fetches a document by type and reference.
// Implements ports.DocumentProvider.
//
// The lookup is a single GET against the API base URL with both values
// percent-encoded into the query string. Any non-200 answer becomes an
// UpstreamStatusError carrying the verbatim status; transport failures
// become ErrUnavailable.
func (c *DocumentClient) GetDocument(ctx context.Context, docType, ref string) (*domain.Document, error) {
	query := url.Values{}
	query.Set("type", docType)
	query.Set("ref", ref)
	path := "?" + query.Encode()

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("query", query.Encode()))
	c.logger.DebugContext(ctx, "fetching document",
		slog.String("doc_type", docType),
		slog.String("ref", ref))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, MapClientError(err, "get document")
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("query", query.Encode()),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	return c.parseDocumentResponse(ctx, resp)
}

// parseDocumentResponse decompresses, decodes, and translates the upstream
// payload into a domain Document.
func (c *DocumentClient) parseDocumentResponse(ctx context.Context, resp *http.Response) (*domain.Document, error) {
	body, err := clients.DecodeBody(resp)
	if err != nil {
		return nil, domain.NewUnavailableError(c.Name(), "decompressing response: "+err.Error())
	}

	external, err := DecodeResponse[documentPayload](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.Name(), err.Error())
	}

	doc, err := translateDocument(external)
	if err != nil {
		return nil, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated upstream payload",
		slog.String("document_name", doc.Details.Name),
		slog.String("document_number", doc.Details.Number),
		slog.Bool("signed", doc.Signature != nil),
		slog.Int("files", len(doc.Files)),
		slog.Int("approvals", len(doc.Approvals)))

	return doc, nil
}

// handleErrorResponse converts a non-200 upstream answer to a domain error.
// The caller's response status must mirror the upstream status exactly, so
// the verbatim code travels inside the error. Response bodies of failed
// lookups carry nothing usable and are discarded.
func (c *DocumentClient) handleErrorResponse(resp *http.Response) error {
	c.logger.Warn("document API error", slog.Int("status_code", resp.StatusCode))

	return domain.NewUpstreamStatusError(resp.StatusCode, documentEntity)
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *DocumentClient) Name() string {
	return serviceName
}

// Check verifies the upstream API is reachable.
// Implements ports.HealthChecker.
//
// The API has no dedicated health endpoint; a bare request against the base
// URL answers 400 for missing parameters, which still proves reachability.
// Only transport-level failures count as unhealthy.
func (c *DocumentClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return nil
}
