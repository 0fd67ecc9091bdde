package bindkit

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/bindkit/pkg/binder"
)

// HandlerFunc is a typed HTTP handler: it receives a context C and a decoded
// request value R, and returns the Response to write. Wrap turns it into a
// plain http.HandlerFunc.
//
// With one of the extractor types as R, decoding happens before the handler
// runs and decode failures never reach it:
//
//	handler := bindkit.HandlerFunc[bindkit.Context, bindkit.JSON[CreateOrder]](
//		func(ctx bindkit.Context, req bindkit.JSON[CreateOrder]) bindkit.Response {
//			order := place(req.Value)
//			return bindkit.JSONWithStatus(http.StatusCreated, order)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter: headers first, then the
// status code, then the body. A render error goes to the configured error
// handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes an HTTP request into v.
type Bind func(r *http.Request, v any) error

// Extractor binds itself from an HTTP request. Request types implementing
// Extractor, such as JSON, Query, and Form, are bound by Wrap automatically
// before any binders configured with WithBinders run.
type Extractor interface {
	FromRequest(r *http.Request) error
}

// ErrorHandler writes the response for a failed request: a binding failure,
// a nil handler response, or a render error.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc with cross-cutting behavior. The first
// decorator passed to WithDecorators becomes the outermost wrapper.
//
//	func Timed[C Context, R any]() Decorator[C, R] {
//		return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
//			return func(ctx C, req R) Response {
//				defer track(time.Now())
//				return next(ctx, req)
//			}
//		}
//	}
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder sets b as the only request binder, replacing any previously
// configured ones. Nil binders are ignored.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders, applied in order after the automatic
// Extractor binding. A binder that does not apply to the request, reported
// through binder.ErrBinderNotApplicable, is skipped; any other failure stops
// the chain.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the default error handler. Nil handlers are
// ignored.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets the factory producing C for each request. Required
// whenever C is not the plain bindkit.Context.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators appends decorators wrapping the handler, first one
// outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// responseError is an error that carries its own HTTP rendering. Rejections
// produced by the extractors implement it.
type responseError interface {
	error
	Response
}

// defaultErrorHandler writes binding and handler failures without logging.
// Errors that carry their own rendering are rendered as-is, HTTPError values
// map to their status code and key, and anything else becomes a 500 with the
// error text as the body.
func defaultErrorHandler[C Context](ctx C, err error) {
	var re responseError
	if errors.As(err, &re) {
		_ = re.Render(ctx.ResponseWriter(), ctx.Request())
		return
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc into an http.HandlerFunc.
//
// Each request flows through: context construction, automatic Extractor
// binding when R implements Extractor, the configured binder chain, the
// decorated handler, and finally Response.Render. The first failure is
// handed to the error handler and the rest of the chain is skipped. A nil
// response reports ErrNilResponse.
//
//	http.HandleFunc("/orders", bindkit.Wrap(handler,
//		bindkit.WithErrorHandler[bindkit.Context, bindkit.JSON[CreateOrder]](errHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// First decorator in the list ends up outermost.
	wrapped := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		wrapped = cfg.decorators[i](wrapped)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		if ex, ok := any(&req).(Extractor); ok {
			if err := ex.FromRequest(r); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := wrapped(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
