package bindkit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit"
)

func TestEmpty(t *testing.T) {
	t.Run("returns 204 No Content", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/test", nil)

		resp := bindkit.Empty()
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("no content-type header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/test", nil)

		resp := bindkit.Empty()
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Empty(t, w.Header().Get("Content-Type"))
	})
}

func TestEmptyWithStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "201 Created", status: http.StatusCreated},
		{name: "202 Accepted", status: http.StatusAccepted},
		{name: "205 Reset Content", status: http.StatusResetContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/test", nil)

			resp := bindkit.EmptyWithStatus(tt.status)
			err := resp.Render(w, r)

			require.NoError(t, err)
			assert.Equal(t, tt.status, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}
}

func TestText(t *testing.T) {
	t.Run("writes plain text with the given status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		resp := bindkit.Text(http.StatusTeapot, "short and stout")
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "short and stout", w.Body.String())
	})

	t.Run("does not append a newline", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		err := bindkit.Text(http.StatusOK, "exact").Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, "exact", w.Body.String())
	})
}

func TestJSONResponse(t *testing.T) {
	type item struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("encodes the value with status 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/items", nil)

		resp := bindkit.JSONResponse(item{Name: "widget", Count: 3})
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"name": "widget", "count": 3}`, w.Body.String())
	})

	t.Run("JSONWithStatus uses the given status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/items", nil)

		resp := bindkit.JSONWithStatus(http.StatusCreated, item{Name: "widget"})
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"name": "widget", "count": 0}`, w.Body.String())
	})

	t.Run("encodes slices and maps", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/items", nil)

		err := bindkit.JSONResponse([]string{"a", "b"}).Render(w, r)

		require.NoError(t, err)
		assert.JSONEq(t, `["a", "b"]`, w.Body.String())
	})
}
