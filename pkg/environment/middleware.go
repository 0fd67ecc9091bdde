package environment

import (
	"context"
	"log/slog"
	"net/http"
)

// Middleware stamps every request context with env, so handlers and log
// records can tell which deployment tier they serve.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), string(env))))
		})
	}
}

// LoggerExtractor adapts FromContext to the logger's context extractor shape,
// so log records written during a request carry the env attribute.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", env), true
	}
}
