// Package logger builds slog loggers with environment presets and automatic
// context attribute injection.
//
// A production service typically configures one logger in main and installs
// it as the default:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "orders-api"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// WithEnvironment maps "production" and "staging" to JSON output at info
// level and everything else to text output at debug level, tagging every
// record with the service name and tier. Individual knobs (WithLevel,
// WithFormat, WithOutput, WithAttr) override the presets when listed after
// them.
//
// Context extractors run once per record. They pull request-scoped values,
// such as the request identifier, out of the context passed to the log call,
// so handlers never thread those values manually:
//
//	log.InfoContext(r.Context(), "order placed") // carries request_id
//
// The Attr helpers (Error, Status, Component, ...) fix the key names used by
// the framework's own records; application code is free to use them too.
package logger
