package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/pkg/binder"
)

type searchRequest struct {
	Query    string   `query:"q"`
	Page     int      `query:"page"`
	Tags     []string `query:"tags"`
	Active   *bool    `query:"active"`
	Internal string   `query:"-"`
}

func TestQuery(t *testing.T) {
	t.Parallel()

	bind := binder.Query()

	t.Run("decodes parameters", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/search?q=golang&page=2&tags=go&tags=web&active=true", nil)

		var got searchRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "golang", got.Query)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, []string{"go", "web"}, got.Tags)
		require.NotNil(t, got.Active)
		assert.True(t, *got.Active)
	})

	t.Run("optional fields stay zero when absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/search?q=golang", nil)

		var got searchRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "golang", got.Query)
		assert.Zero(t, got.Page)
		assert.Nil(t, got.Active)
	})

	t.Run("ignores unknown and skipped parameters", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/search?q=golang&unknown=1&Internal=nope", nil)

		var got searchRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "golang", got.Query)
		assert.Empty(t, got.Internal)
	})

	t.Run("conversion failure", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/search?page=abc", nil)

		var got searchRequest
		err := bind(req, &got)
		require.ErrorIs(t, err, binder.ErrDataMismatch)

		var multi schema.MultiError
		require.ErrorAs(t, err, &multi)
		assert.Contains(t, err.Error(), "page")
	})

	t.Run("malformed query string", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/search?q=%zz", nil)

		var got searchRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrMalformedInput)
	})
}
