package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

var formDecoder = newDecoder("form")

// Form creates a binder that decodes application/x-www-form-urlencoded
// request bodies into v.
//
// GET and HEAD requests carry no form body, so for those methods the binder
// reads the query string instead. Every other method must send a body with a
// Content-Type of application/x-www-form-urlencoded.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"` - skips the field
//
// Supported types cover the gorilla/schema surface: basic types, slices of
// basic types for repeated fields, and pointers for optional fields. Unknown
// fields are ignored.
//
// Example:
//
//	type LoginRequest struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//		Remember bool   `form:"remember"`
//	}
//
//	http.HandleFunc("/login", bindkit.Wrap(handler,
//		bindkit.WithBinder(binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			values, err := url.ParseQuery(r.URL.RawQuery)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedInput, err)
			}
			if err := formDecoder.Decode(v, values); err != nil {
				return translateSchemaError(err)
			}
			return nil
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}
		if mt := mediaType(contentType); mt != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mt)
		}

		body, err := readBody(r)
		if err != nil {
			return err
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		if err := formDecoder.Decode(v, values); err != nil {
			return translateSchemaError(err)
		}
		return nil
	}
}
