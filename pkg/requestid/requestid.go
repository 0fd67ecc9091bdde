package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the canonical request identifier header.
const Header = "X-Request-ID"

// maxLength bounds identifiers accepted from clients. Longer values are
// replaced with a generated one.
const maxLength = 128

type ctxKey struct{}

// WithContext returns a context carrying the request identifier.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request identifier carried by ctx, or an empty
// string when there is none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware ensures every request carries an identifier. A well-formed
// X-Request-ID supplied by the client is propagated unchanged; a missing or
// malformed one is replaced with a fresh UUID. The identifier ends up in the
// request context and is echoed in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !validID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// validID reports whether a client-supplied identifier may be propagated:
// non-empty, at most maxLength bytes, and made of letters, digits, hyphens,
// and underscores only. Identifiers are reflected in response headers and
// log lines, so anything else is discarded.
func validID(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
