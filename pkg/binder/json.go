package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSON creates a binder that decodes an application/json request body into v.
//
// The request must carry a Content-Type of application/json (a +json suffix
// such as application/ld+json is accepted too). Unknown fields are ignored,
// matching encoding/json defaults, but data trailing the first JSON value is
// rejected.
//
// Failures are classified for the caller: content-type problems wrap
// ErrMissingContentType or ErrUnsupportedMediaType, unreadable or oversized
// bodies wrap ErrFailedToReadBody or ErrBodyTooLarge, broken JSON wraps
// ErrMalformedInput, and well-formed JSON that does not fit v wraps
// ErrDataMismatch with the json error kept in the chain.
//
// Example:
//
//	handler := bindkit.HandlerFunc[bindkit.Context, CreateUserRequest](
//		func(ctx bindkit.Context, req CreateUserRequest) bindkit.Response {
//			return bindkit.JSONWithStatus(http.StatusCreated, user)
//		},
//	)
//
//	http.HandleFunc("/users", bindkit.Wrap(handler,
//		bindkit.WithBinder(binder.JSON()),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(contentType); !isJSONMediaType(mt) {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := readBody(r)
		if err != nil {
			return err
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if err := decoder.Decode(v); err != nil {
			return classifyJSONError(err)
		}

		// Ensure the entire body was consumed.
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", ErrMalformedInput, errTrailingData)
		}

		return nil
	}
}

var errTrailingData = errors.New("unexpected data after JSON value")

// classifyJSONError splits decode failures into syntax-level and data-level
// classes. Truncated input counts as syntax, everything else that is not a
// syntax error is a mismatch between valid JSON and the target type.
func classifyJSONError(err error) error {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrDataMismatch, err)
	}
}

func isJSONMediaType(mt string) bool {
	return mt == "application/json" ||
		(strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
