package bindkit

import (
	"context"
	"net/http"
	"time"
)

// Context is the first argument of every wrapped handler. It behaves as the
// request's context.Context and exposes the underlying HTTP pair for code
// that needs direct access, such as error handlers writing a response.
//
// Custom context types embed or implement Context to surface application
// state, for example the authenticated user; see WithContextFactory.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext returns the default Context implementation for the given pair.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

// The context.Context methods delegate to the request's context, so deadline
// and cancellation follow the request.

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }

// ContextKey is a collision-free key for context values. Declare one as a
// package-level variable per value:
//
//	var sessionKey = bindkit.NewContextKey("session")
type ContextKey struct{ name string }

// String returns the key's name for debugging.
func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a context key with the given name. The name only
// shows up in debug output; identity comes from the returned pointer.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue retrieves a typed value from the context, returning the zero
// value of T when the key is absent or holds a different type.
//
//	session := bindkit.ContextValue[*Session](ctx, sessionKey)
//	if session == nil {
//		// not signed in
//	}
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK is ContextValue with a presence report, for values whose
// zero value is meaningful:
//
//	retries, ok := bindkit.ContextValueOK[int](ctx, retriesKey)
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
