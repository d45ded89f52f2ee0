// Package acl is the anti-corruption layer for the upstream
// document-management API.
//
// The upstream speaks a localized JSON dialect: section and leaf names are
// Russian ("ДанныеДокумента", "ДанныеПодписи", ...), optional sections are
// simply absent, and responses may arrive compressed in any encoding the
// request advertised. All of that stays inside this package. The rest of
// the service sees only domain.Document and domain errors.
//
// # Components
//
//   - [DocumentClient]: ports.DocumentProvider implementation over the
//     instrumented clients.Client, plus the upstream reachability health
//     check
//   - documentPayload and friends: the external DTOs, one struct per
//     upstream section, pointers marking optionality
//   - translateDocument: payload to domain translation; the single place
//     the upstream contract is interpreted
//   - [MapClientError]: transport failures to domain.ErrUnavailable
//   - [DecodeResponse], [TranslateSlice], [TranslateMap]: decoding and
//     translation helpers
//
// # Error handling strategy
//
// The upstream signals outcomes with HTTP status codes alone and its error
// bodies carry nothing usable, so the mapping is deliberately narrow:
//
//   - transport failure, circuit open, retries exhausted →
//     [domain.ErrUnavailable]
//   - any non-200 status → [domain.UpstreamStatusError] carrying the
//     verbatim code (404 and 409 additionally satisfy [domain.ErrNotFound]
//     and [domain.ErrConflict] through unwrapping)
//   - 200 without the mandatory details section → [domain.ErrUnavailable];
//     the upstream reports a genuinely missing document with 404, never
//     with an empty body
package acl
