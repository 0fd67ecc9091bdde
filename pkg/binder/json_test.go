package binder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/pkg/binder"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func newJSONRequest(t *testing.T, body, contentType string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes valid body", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John","email":"john@example.com","age":30}`, "application/json")

		var got createUserRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "John", got.Name)
		assert.Equal(t, "john@example.com", got.Email)
		assert.Equal(t, 30, got.Age)
	})

	t.Run("accepts content type parameters", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John"}`, "application/json; charset=utf-8")

		var got createUserRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "John", got.Name)
	})

	t.Run("accepts json suffix media types", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John"}`, "application/ld+json")

		var got createUserRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "John", got.Name)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John","nickname":"jd"}`, "application/json")

		var got createUserRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "John", got.Name)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John"}`, "")

		var got createUserRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John"}`, "text/plain")

		var got createUserRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
		assert.Contains(t, err.Error(), "text/plain")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":`, "application/json")

		var got createUserRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMalformedInput)
	})

	t.Run("syntax error keeps cause in chain", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{invalid}`, "application/json")

		var got createUserRequest
		err := bind(req, &got)
		require.ErrorIs(t, err, binder.ErrMalformedInput)

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, "", "application/json")

		var got createUserRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMalformedInput)
	})

	t.Run("type mismatch keeps cause in chain", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John","age":"thirty"}`, "application/json")

		var got createUserRequest
		err := bind(req, &got)
		require.ErrorIs(t, err, binder.ErrDataMismatch)

		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "age", typeErr.Field)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John"}{"name":"Jane"}`, "application/json")

		var got createUserRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMalformedInput)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		body := `{"name":"` + strings.Repeat("a", binder.DefaultMaxBodySize) + `"}`
		req := newJSONRequest(t, body, "application/json")

		var got createUserRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})

	t.Run("canceled request context", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(t, `{"name":"John"}`, "application/json")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req = req.WithContext(ctx)

		var got createUserRequest
		err := bind(req, &got)
		require.ErrorIs(t, err, binder.ErrFailedToReadBody)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
