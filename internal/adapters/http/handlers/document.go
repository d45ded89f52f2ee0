// Package handlers maps the viewer's HTTP surface onto the application
// layer: the document page itself and the operational endpoints under /-.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/docbridge/docview/internal/adapters/render"
	"github.com/docbridge/docview/internal/app"
)

// DocumentHandler handles the document viewer endpoint.
type DocumentHandler struct {
	service *app.DocumentService
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(service *app.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		service: service,
	}
}

// GetDocument handles GET /.
// Fetches the document addressed by the type and ref query parameters and
// renders it as an HTML page. Failures render the localized error page with
// the status resolved from the domain error, so upstream codes reach the
// browser unchanged.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.service.GetDocument(c.Request.Context(), c.Query("type"), c.Query("ref"))
	if err != nil {
		render.Error(c, err)
		return
	}

	render.Document(c, doc)
}

// RegisterDocumentRoutes registers the viewer route on the given group.
// The group is expected to sit at the engine root: the page lives at / so
// existing links printed on paper documents keep resolving.
func (h *DocumentHandler) RegisterDocumentRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.GetDocument)
}
