package render

import "net/http"

// messages holds the user-facing error texts, keyed by error code and
// locale. The strings are a wire contract with the deployment's reverse
// proxy and its monitoring; change them only together with operations.
var messages = map[int]map[Locale]string{
	http.StatusBadRequest: {
		LocaleEN: "Invalid or missing query parameters: `type` and `ref` are required.",
		LocaleRU: "Некорректные или отсутствующие параметры запроса: `type` и `ref` обязательны.",
	},
	http.StatusNotFound: {
		LocaleEN: "Document not found",
		LocaleRU: "Документ не найден",
	},
	http.StatusConflict: {
		LocaleEN: "Document not signed",
		LocaleRU: "Документ не подписан",
	},
	http.StatusInternalServerError: {
		LocaleEN: "Service is unavailable",
		LocaleRU: "Сервис недоступен",
	},
}

// Message returns the localized text for an error code. Codes outside the
// table use the service-unavailable row; locales outside the table fall
// back to the English text. The caller keeps the original numeric code for
// the response status regardless of which row supplied the message.
func Message(code int, loc Locale) string {
	byLocale, ok := messages[code]
	if !ok {
		byLocale = messages[http.StatusInternalServerError]
	}

	if text, ok := byLocale[loc]; ok {
		return text
	}

	return byLocale[LocaleEN]
}
