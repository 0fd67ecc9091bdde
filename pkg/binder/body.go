package binder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxBodySize is the maximum number of bytes a binder reads from a
// request body before rejecting it with ErrBodyTooLarge.
const DefaultMaxBodySize = 2 << 20 // 2 MB

// readBody buffers the request body up to DefaultMaxBodySize. A canceled
// request context or a failing reader maps to ErrFailedToReadBody, an
// over-long body to ErrBodyTooLarge.
func readBody(r *http.Request) ([]byte, error) {
	select {
	case <-r.Context().Done():
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadBody, r.Context().Err())
	default:
	}

	if r.Body == nil {
		return nil, nil
	}

	limited := io.LimitReader(r.Body, DefaultMaxBodySize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadBody, err)
	}
	if len(body) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: %w", ErrBodyTooLarge, errLengthLimit)
	}
	return body, nil
}

var errLengthLimit = errors.New("length limit exceeded")

// mediaType extracts the media type from a Content-Type header value,
// dropping parameters such as charset.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
