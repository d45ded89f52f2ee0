package render

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Template names, as registered on the gin engine.
const (
	// TemplateDocument is the main document page.
	TemplateDocument = "document.html"

	// TemplateError is the localized error page.
	TemplateError = "error.html"
)

// Templates parses the embedded page templates. Parsing can only fail when
// the embedded files themselves are broken, so failures panic at startup
// rather than surfacing as runtime errors.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
