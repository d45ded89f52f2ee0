package acl

import "net/http"

// BrowserHeaders returns the fixed header profile sent with every upstream
// request. The document-management API sits behind a portal tuned for
// interactive browsers; requests without this profile are rejected before
// they reach the API, so the values are part of the upstream contract.
//
// Listing Accept-Encoding by hand switches off the transport's transparent
// gzip handling; clients.DecodeBody decompresses whichever coding the
// upstream picks from the list.
func BrowserHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7")
	h.Set("Accept-Encoding", "gzip, deflate, br, zstd")
	h.Set("Accept-Language", "en")
	h.Set("Cache-Control", "max-age=0")
	h.Set("Connection", "keep-alive")
	h.Set("Content-Type", "application/json")
	h.Set("Host", "localhost")
	h.Set("Sec-Ch-Ua", `"Not/A)Brand";v="8", "Chromium";v="126", "Microsoft Edge";v="126"`)
	h.Set("Sec-Ch-Ua-Mobile", "?0")
	h.Set("Sec-Ch-Ua-Platform", `"Windows"`)
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Site", "none")
	h.Set("Sec-Fetch-User", "?1")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0")

	return h
}

// BasicAuth returns a request hook that signs an attempt with the service
// account. The client calls it on every attempt, retries included.
func BasicAuth(login, password string) func(*http.Request) {
	return func(req *http.Request) {
		req.SetBasicAuth(login, password)
	}
}
