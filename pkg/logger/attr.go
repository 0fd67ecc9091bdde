package logger

import (
	"log/slog"
	"strconv"
)

// Attribute helpers used by the framework's own log records. Sharing them
// keeps key names consistent across components.

// Error records err under the key "error". A nil error produces an empty
// Attr, which slog handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors", indexed by
// argument position. All-nil input produces an empty Attr.
func Errors(errs ...error) slog.Attr {
	attrs := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			attrs = append(attrs, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(attrs...)}
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// ConfigType records a configuration value's type name under the key
// "config_type".
func ConfigType(name string) slog.Attr {
	return slog.String("config_type", name)
}

// Source records what produced a failure under the key "source", for example
// "rejection" or "validation".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
