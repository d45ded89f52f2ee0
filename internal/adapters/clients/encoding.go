package clients

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// DecodeBody returns a reader that yields the decompressed response body.
//
// Setting Accept-Encoding explicitly disables net/http's transparent gzip
// handling, so a client that advertises encodings itself must also decode
// them. Closing the returned reader closes the underlying body.
func DecodeBody(resp *http.Response) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))

	switch encoding {
	case "", "identity":
		return resp.Body, nil

	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &decodedBody{Reader: zr, closers: []io.Closer{zr, resp.Body}}, nil

	case "deflate":
		// Servers disagree on whether deflate means a zlib stream or raw
		// flate. Sniff the two-byte zlib header to pick the right reader.
		br := bufio.NewReader(resp.Body)
		if hasZlibHeader(br) {
			zr, err := zlib.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("zlib reader: %w", err)
			}
			return &decodedBody{Reader: zr, closers: []io.Closer{zr, resp.Body}}, nil
		}
		fr := flate.NewReader(br)
		return &decodedBody{Reader: fr, closers: []io.Closer{fr, resp.Body}}, nil

	case "br":
		return &decodedBody{Reader: brotli.NewReader(resp.Body), closers: []io.Closer{resp.Body}}, nil

	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		dec := zr.IOReadCloser()
		return &decodedBody{Reader: dec, closers: []io.Closer{dec, resp.Body}}, nil

	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// hasZlibHeader reports whether the buffered stream starts with a zlib
// header: compression method 8 and a header checksum divisible by 31.
func hasZlibHeader(br *bufio.Reader) bool {
	head, err := br.Peek(2)
	if err != nil || len(head) < 2 {
		return false
	}
	if head[0]&0x0f != 8 || head[0]>>4 > 7 {
		return false
	}
	return (uint16(head[0])<<8|uint16(head[1]))%31 == 0
}

// decodedBody pairs a decompressing reader with everything that must be
// closed once the caller is done.
type decodedBody struct {
	io.Reader
	closers []io.Closer
}

func (b *decodedBody) Close() error {
	var firstErr error
	for _, c := range b.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
