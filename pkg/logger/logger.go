package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/bindkit/pkg/environment"
)

// Format selects the output encoding of a logger.
type Format string

const (
	// FormatJSON emits one JSON object per record, suited for log
	// aggregation systems.
	FormatJSON Format = "json"
	// FormatText emits human-readable records, suited for development.
	FormatText Format = "text"
)

// ContextExtractor pulls an attribute out of the log call's context. The
// boolean reports whether the attribute should be attached to the record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Option configures New.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// WithLevel sets the minimum level a record must have to be emitted.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat selects the output encoding. An unknown format panics at
// configuration time rather than producing a logger with surprise defaults.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Sprintf("logger: unknown format %q", f))
		}
	}
}

// WithOutput redirects log output. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors that attach request-scoped
// attributes, such as request identifiers, to every record logged with a
// context. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithDevelopment applies development defaults: text output at debug level,
// tagged with the service name and tier. An empty service name leaves the
// configuration untouched.
func WithDevelopment(service string) Option {
	return preset(service, slog.LevelDebug, FormatText, environment.Development)
}

// WithStaging applies staging defaults: JSON output at info level, tagged
// with the service name and tier.
func WithStaging(service string) Option {
	return preset(service, slog.LevelInfo, FormatJSON, environment.Staging)
}

// WithProduction applies production defaults: JSON output at info level,
// tagged with the service name and tier.
func WithProduction(service string) Option {
	return preset(service, slog.LevelInfo, FormatJSON, environment.Production)
}

// WithEnvironment picks the preset matching env, accepting the same spellings
// as environment.Parse.
func WithEnvironment(env string, service string) Option {
	switch environment.Parse(env) {
	case environment.Production:
		return WithProduction(service)
	case environment.Staging:
		return WithStaging(service)
	default:
		return WithDevelopment(service)
	}
}

func preset(service string, level slog.Level, format Format, env environment.Environment) Option {
	return func(o *options) {
		if service == "" {
			return
		}
		o.level = level
		o.format = format
		o.attrs = append(o.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

// New builds a slog.Logger. Without options it writes JSON records at info
// level to stdout. Static attributes are attached first; context extractors
// run per record, at the moment of logging.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: o.level}
	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, hopts)
	} else {
		handler = slog.NewJSONHandler(o.output, hopts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(newContextHandler(handler, o.extractors))
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
