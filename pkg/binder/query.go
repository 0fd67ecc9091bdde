package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

var queryDecoder = newDecoder("query")

// Query creates a binder that decodes URL query parameters into v.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Supported types cover the gorilla/schema surface: basic types, slices of
// basic types for repeated parameters, and pointers for optional fields.
// Unknown parameters are ignored.
//
// Example:
//
//	type SearchRequest struct {
//		Query    string   `query:"q"`
//		Page     int      `query:"page"`
//		Tags     []string `query:"tags"`   // ?tags=go&tags=web
//		Active   *bool    `query:"active"` // Optional
//		Internal string   `query:"-"`      // Skipped
//	}
//
//	http.HandleFunc("/search", bindkit.Wrap(handler,
//		bindkit.WithBinder(binder.Query()),
//	))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		if err := queryDecoder.Decode(v, values); err != nil {
			return translateSchemaError(err)
		}
		return nil
	}
}
