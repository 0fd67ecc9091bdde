package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor adapts FromContext to the logger's context extractor shape,
// so every log record written during a request carries its request_id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
