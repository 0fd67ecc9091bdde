package bindkit

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/bindkit/pkg/extensions"
	"github.com/dmitrymomot/bindkit/pkg/logger"
)

// Config carries one configuration value of type T and installs it into each
// request's extension store exactly once. Extractors and handlers read it
// back with ConfigFrom.
//
// A Config is immutable after construction and shared read-only across
// concurrent requests.
type Config[T any] struct {
	value T
	log   *slog.Logger
}

// ConfigOption configures a Config.
type ConfigOption func(*configOptions)

type configOptions struct {
	log *slog.Logger
}

// WithConfigLogger sets the logger used to report duplicate installations.
// Defaults to slog.Default.
func WithConfigLogger(log *slog.Logger) ConfigOption {
	return func(o *configOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// NewConfig creates a Config carrying value.
func NewConfig[T any](value T, opts ...ConfigOption) *Config[T] {
	o := &configOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return &Config[T]{value: value, log: o.log}
}

// Value returns the carried configuration value.
func (c *Config[T]) Value() T {
	return c.value
}

// Middleware installs the carried value into the request's extension store
// and invokes the next handler. Installing a value whose type is already
// present short-circuits with a 500 response naming the duplicated type; the
// downstream handler is never invoked. A duplicate is a wiring error that
// reproduces on every request through the same pipeline, so it is reported
// loudly instead of silently overwriting.
//
// The middleware creates the extension store on first use, so stacking
// several Config layers on one route shares a single store.
func (c *Config[T]) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := extensions.FromContext(r.Context())
		if m == nil {
			m = extensions.New()
			r = r.WithContext(extensions.WithContext(r.Context(), m))
		}

		if err := extensions.Set(m, c.value); err != nil {
			name := configTypeName[T]()
			c.log.LogAttrs(r.Context(), slog.LevelError, "duplicate configuration layer",
				logger.ConfigType(name),
				logger.Error(err),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Component("config"),
			)

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, fmt.Sprintf(
				"Config of type %q was already added. Configs can only be added once", name))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ConfigFrom returns the configuration value of type T installed into the
// request by a Config middleware. The boolean reports whether one was
// installed.
func ConfigFrom[T any](r *http.Request) (T, bool) {
	return extensions.Get[T](extensions.FromContext(r.Context()))
}

// configTypeName returns the printable name of T used in duplicate reports.
func configTypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// rejectionConfig is the shared shape of the per-kind configuration types:
// each carries an optional rejection handler.
type rejectionConfig interface {
	handler() RejectionHandler
}

// JSONConfig configures the JSON extractor's rejection path. The zero value
// has no handler and behaves as if no configuration was installed.
type JSONConfig struct {
	rejectionHandler RejectionHandler
}

// NewJSONConfig creates a JSONConfig with no rejection handler.
func NewJSONConfig() JSONConfig {
	return JSONConfig{}
}

// WithRejectionHandler returns a copy of the config using h for rejections.
//
// Example:
//
//	cfg := bindkit.NewJSONConfig().WithRejectionHandler(
//		func(rej *bindkit.Rejection, r *http.Request) bindkit.Response {
//			return bindkit.JSONWithStatus(rej.Status(), map[string]string{
//				"error": rej.Error(),
//			})
//		},
//	)
//	router.Use(cfg.Middleware)
func (c JSONConfig) WithRejectionHandler(h RejectionHandler) JSONConfig {
	c.rejectionHandler = h
	return c
}

// Middleware installs the config for downstream JSON extractors.
func (c JSONConfig) Middleware(next http.Handler) http.Handler {
	return NewConfig(c).Middleware(next)
}

func (c JSONConfig) handler() RejectionHandler { return c.rejectionHandler }

// QueryConfig configures the Query extractor's rejection path. The zero value
// has no handler and behaves as if no configuration was installed.
type QueryConfig struct {
	rejectionHandler RejectionHandler
}

// NewQueryConfig creates a QueryConfig with no rejection handler.
func NewQueryConfig() QueryConfig {
	return QueryConfig{}
}

// WithRejectionHandler returns a copy of the config using h for rejections.
func (c QueryConfig) WithRejectionHandler(h RejectionHandler) QueryConfig {
	c.rejectionHandler = h
	return c
}

// Middleware installs the config for downstream Query extractors.
func (c QueryConfig) Middleware(next http.Handler) http.Handler {
	return NewConfig(c).Middleware(next)
}

func (c QueryConfig) handler() RejectionHandler { return c.rejectionHandler }

// FormConfig configures the Form extractor's rejection path. The zero value
// has no handler and behaves as if no configuration was installed.
type FormConfig struct {
	rejectionHandler RejectionHandler
}

// NewFormConfig creates a FormConfig with no rejection handler.
func NewFormConfig() FormConfig {
	return FormConfig{}
}

// WithRejectionHandler returns a copy of the config using h for rejections.
func (c FormConfig) WithRejectionHandler(h RejectionHandler) FormConfig {
	c.rejectionHandler = h
	return c
}

// Middleware installs the config for downstream Form extractors.
func (c FormConfig) Middleware(next http.Handler) http.Handler {
	return NewConfig(c).Middleware(next)
}

func (c FormConfig) handler() RejectionHandler { return c.rejectionHandler }
