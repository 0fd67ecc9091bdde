package bindkit

import (
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/dmitrymomot/bindkit/pkg/binder"
)

// Package-level binders shared by the extractor types. Binders are stateless
// closures, so a single instance serves all requests.
var (
	bindJSON  = binder.JSON()
	bindQuery = binder.Query()
	bindForm  = binder.Form()
)

var formEncoder = newFormEncoder()

func newFormEncoder() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("form")
	return enc
}

// extract runs bind against the request and translates failures into
// rejections. When a configuration of type C installed upstream carries a
// rejection handler, the handler's response is attached to the returned
// error; otherwise the rejection itself doubles as the response. A missing
// configuration is equivalent to the zero value of C.
func extract[C rejectionConfig](r *http.Request, bind func(*http.Request, any) error, classify func(error) *Rejection, v any) error {
	err := bind(r, v)
	if err == nil {
		return nil
	}

	rej := classify(err)
	cfg, _ := ConfigFrom[C](r)
	if h := cfg.handler(); h != nil {
		if resp := h(rej, r); resp != nil {
			return &resolvedRejection{rej: rej, resp: resp}
		}
	}
	return rej
}

// resolvedRejection pairs a rejection with the response produced by a
// configured rejection handler. It unwraps to the rejection so callers can
// still inspect the failure while the custom response is what gets written.
type resolvedRejection struct {
	rej  *Rejection
	resp Response
}

func (e *resolvedRejection) Error() string { return e.rej.Error() }

func (e *resolvedRejection) Unwrap() error { return e.rej }

func (e *resolvedRejection) Render(w http.ResponseWriter, r *http.Request) error {
	return e.resp.Render(w, r)
}

// JSON extracts T from a JSON request body.
//
// Used as a handler request type, Wrap binds it before invoking the handler:
//
//	handler := bindkit.Wrap(func(ctx bindkit.Context, req bindkit.JSON[CreateUser]) bindkit.Response {
//		user := store.Create(req.Value)
//		return bindkit.JSONWithStatus(http.StatusCreated, user)
//	})
//
// Requests without Content-Type: application/json are rejected with 415,
// unreadable or malformed bodies with 400 (413 when over the size limit),
// and bodies that do not fit T with 422. Install a JSONConfig middleware
// upstream to replace those responses.
//
// JSON is also a Response: returning JSON[T]{Value: v} from a handler
// renders v as a JSON body.
type JSON[T any] struct {
	Value T
}

// FromRequest binds the request body into Value.
func (j *JSON[T]) FromRequest(r *http.Request) error {
	return extract[JSONConfig](r, bindJSON, rejectJSON, &j.Value)
}

// Render writes Value as an application/json body with status 200.
func (j JSON[T]) Render(w http.ResponseWriter, r *http.Request) error {
	return JSONResponse(j.Value).Render(w, r)
}

// Query extracts T from the request's query string.
//
//	type listParams struct {
//		Page int    `query:"page"`
//		Sort string `query:"sort"`
//	}
//
// Query strings that cannot be decoded into T are rejected with 400.
// Install a QueryConfig middleware upstream to replace that response.
type Query[T any] struct {
	Value T
}

// FromRequest binds the query string into Value.
func (q *Query[T]) FromRequest(r *http.Request) error {
	return extract[QueryConfig](r, bindQuery, rejectQuery, &q.Value)
}

// Form extracts T from an application/x-www-form-urlencoded request body,
// or from the query string for GET and HEAD requests.
//
// Requests with a different Content-Type are rejected with 415, unparsable
// bodies with 400, and bodies that do not fit T with 422. Install a
// FormConfig middleware upstream to replace those responses.
//
// Form is also a Response: returning Form[T]{Value: v} from a handler
// renders v as a urlencoded body.
type Form[T any] struct {
	Value T
}

// FromRequest binds the form data into Value.
func (f *Form[T]) FromRequest(r *http.Request) error {
	return extract[FormConfig](r, bindForm, rejectForm, &f.Value)
}

// Render writes Value as an application/x-www-form-urlencoded body with
// status 200.
func (f Form[T]) Render(w http.ResponseWriter, r *http.Request) error {
	vals := url.Values{}
	if err := formEncoder.Encode(f.Value, vals); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
	w.WriteHeader(http.StatusOK)
	_, err := io.WriteString(w, vals.Encode())
	return err
}
