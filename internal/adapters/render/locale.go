// Package render builds the HTML views served to document readers: the
// document page, the localized error page, and the locale/message tables
// both draw from. Templates are embedded so the binary is self-contained.
package render

import "strings"

// Locale is a two-letter language code resolved from the Accept-Language
// header. Values outside the supported set are kept as-is; message and
// label lookups fall back to English for them.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// DefaultLocale is used when the request carries no Accept-Language header.
const DefaultLocale = LocaleEN

// ResolveLocale derives the response locale from an Accept-Language header
// value: the first comma-separated entry, truncated to its two-letter
// language code. Quality weights are ignored. An empty header resolves to
// English.
func ResolveLocale(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	lang := acceptLanguage
	if i := strings.IndexByte(lang, ','); i >= 0 {
		lang = lang[:i]
	}

	if len(lang) > 2 {
		lang = lang[:2]
	}

	return Locale(lang)
}
