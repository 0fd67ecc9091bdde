package bindkit

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bindkit/pkg/logger"
	"github.com/dmitrymomot/bindkit/pkg/requestid"
)

// errorInfo is the outcome of classifying a handler or extraction failure.
type errorInfo struct {
	StatusCode int
	Message    string
	Source     string
	LogLevel   slog.Level
}

// classifyError maps an error chain onto a status code, a safe response
// message, and the failure source. Later checks are more specific and win:
// an HTTPError wrapped inside a rejection reports as a rejection.
func classifyError(err error) errorInfo {
	info := errorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
		Source:     "handler",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
		info.Source = "http_error"
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusBadRequest
		info.Message = validationErr.Error()
		info.Source = "validation"
	}

	var rej *Rejection
	if errors.As(err, &rej) {
		info.StatusCode = rej.Status()
		info.Message = rej.Error()
		info.Source = "rejection"
	}

	if info.StatusCode >= http.StatusBadRequest && info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	} else {
		info.LogLevel = slog.LevelError
	}

	return info
}

// logError reports the failure with its request context attached.
func logError(log *slog.Logger, ctx Context, err error, info errorInfo) {
	log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(ctx.Request().Context())),
		logger.Error(err),
		logger.Status(info.StatusCode),
		logger.Source(info.Source),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates an error handler that logs every failure before
// rendering it. Client errors log at warn level, server errors at error
// level. Errors carrying their own rendering, such as extractor rejections,
// are rendered as-is; everything else becomes a plain-text response with the
// classified status and message. Configure it once in main and hand it to
// Wrap through WithErrorHandler.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		var re responseError
		if errors.As(err, &re) {
			if renderErr := re.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
				log.LogAttrs(ctx.Request().Context(), slog.LevelError, "failed to render error response",
					logger.RequestID(requestid.FromContext(ctx.Request().Context())),
					logger.Errors(err, renderErr),
					logger.Component("error_handler"),
				)
				http.Error(ctx.ResponseWriter(), "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}
