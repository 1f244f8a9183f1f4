package engine

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxDecodedBodyBytes = 4 << 20 // 4 MiB safety cap

// DecodeResponseBody reads the body, undoing a Content-Encoding the transport
// left in place. Bodies beyond the cap are truncated.
func DecodeResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer r.Close()
		reader = r
	case "deflate":
		r := flate.NewReader(resp.Body)
		defer r.Close()
		reader = r
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(reader, maxDecodedBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bodyBytes) > maxDecodedBodyBytes {
		bodyBytes = bodyBytes[:maxDecodedBodyBytes]
	}
	return bodyBytes, nil
}
