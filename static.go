package bindkit

import "net/http"

// RejectionResolver turns a rejection into the response to write. Resolver
// types are named as the second type parameter of StaticJSON, StaticQuery,
// and StaticForm, so the zero value of an implementation must be usable.
type RejectionResolver interface {
	ResolveRejection(rej *Rejection, r *http.Request) Response
}

// extractStatic mirrors extract but resolves rejections through the zero
// value of C instead of a request-installed configuration.
func extractStatic[C RejectionResolver](r *http.Request, bind func(*http.Request, any) error, classify func(error) *Rejection, v any) error {
	err := bind(r, v)
	if err == nil {
		return nil
	}

	rej := classify(err)
	var resolver C
	if resp := resolver.ResolveRejection(rej, r); resp != nil {
		return &resolvedRejection{rej: rej, resp: resp}
	}
	return rej
}

// StaticJSON extracts T from a JSON request body like JSON, but resolves
// rejections through the resolver type C instead of request-installed
// configuration. Use it when the rejection format belongs in the handler's
// type signature rather than in middleware wiring:
//
//	type apiError struct{}
//
//	func (apiError) ResolveRejection(rej *bindkit.Rejection, _ *http.Request) bindkit.Response {
//		return bindkit.JSONWithStatus(rej.Status(), map[string]string{"error": rej.Error()})
//	}
//
//	handler := bindkit.Wrap(func(ctx bindkit.Context, req bindkit.StaticJSON[CreateUser, apiError]) bindkit.Response {
//		...
//	})
//
// Naming *Rejection as C keeps the default plain-text rendering.
type StaticJSON[T any, C RejectionResolver] struct {
	Value T
}

// FromRequest binds the request body into Value.
func (j *StaticJSON[T, C]) FromRequest(r *http.Request) error {
	return extractStatic[C](r, bindJSON, rejectJSON, &j.Value)
}

// StaticQuery extracts T from the query string like Query, resolving
// rejections through the resolver type C.
type StaticQuery[T any, C RejectionResolver] struct {
	Value T
}

// FromRequest binds the query string into Value.
func (q *StaticQuery[T, C]) FromRequest(r *http.Request) error {
	return extractStatic[C](r, bindQuery, rejectQuery, &q.Value)
}

// StaticForm extracts T from form data like Form, resolving rejections
// through the resolver type C.
type StaticForm[T any, C RejectionResolver] struct {
	Value T
}

// FromRequest binds the form data into Value.
func (f *StaticForm[T, C]) FromRequest(r *http.Request) error {
	return extractStatic[C](r, bindForm, rejectForm, &f.Value)
}
