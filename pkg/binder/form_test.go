package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/pkg/binder"
)

type loginRequest struct {
	Username string   `form:"username"`
	Password string   `form:"password"`
	Remember bool     `form:"remember"`
	Roles    []string `form:"roles"`
}

func newFormRequest(t *testing.T, body, contentType string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	t.Run("decodes urlencoded body", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, "username=john&password=secret&remember=true&roles=admin&roles=user",
			"application/x-www-form-urlencoded")

		var got loginRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "john", got.Username)
		assert.Equal(t, "secret", got.Password)
		assert.True(t, got.Remember)
		assert.Equal(t, []string{"admin", "user"}, got.Roles)
	})

	t.Run("accepts content type parameters", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, "username=john", "application/x-www-form-urlencoded; charset=utf-8")

		var got loginRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "john", got.Username)
	})

	t.Run("reads query string for GET", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/login?username=john&remember=true", nil)

		var got loginRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "john", got.Username)
		assert.True(t, got.Remember)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, "username=john", "")

		var got loginRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, `{"username":"john"}`, "application/json")

		var got loginRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, "username=%zz", "application/x-www-form-urlencoded")

		var got loginRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMalformedInput)
	})

	t.Run("conversion failure", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, "remember=maybe", "application/x-www-form-urlencoded")

		var got loginRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrDataMismatch)
		assert.Contains(t, err.Error(), "remember")
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(t, "username=john&extra=1", "application/x-www-form-urlencoded")

		var got loginRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "john", got.Username)
	})
}
