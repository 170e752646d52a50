package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "simple_string", content: "Hello, World!", expected: "Hello, World!"},
		{name: "empty_string", content: "", expected: ""},
		{name: "multiline_string", content: "Line 1\nLine 2", expected: "Line 1\nLine 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			err := response.String(tt.content)(w, req)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestStringWithStatusDefaultsToOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	require.NoError(t, response.StringWithStatus("ok", 0)(w, req))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRenderersKeepDeclaredContentType(t *testing.T) {
	t.Parallel()

	renderers := map[string]func(http.ResponseWriter, *http.Request) error{
		"string": response.String("a,b"),
		"json":   response.JSON(map[string]int{"a": 1}),
	}

	for name, render := range renderers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			w.Header().Set("Content-Type", "application/vnd.api+json")

			require.NoError(t, render(w, req))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/vnd.api+json", w.Header().Get("Content-Type"))
		})
	}
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	w := httptest.NewRecorder()

	require.NoError(t, response.NoContent()(w, req))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		require.NoError(t, response.JSON(map[string]int{"count": 2})(w, req))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"count":2}`, w.Body.String())
	})

	t.Run("zero_status_with_nil_is_no_content", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		require.NoError(t, response.JSONWithStatus(nil, 0)(w, req))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	err := response.Error(want)(w, req)
	assert.ErrorIs(t, err, want)
	assert.Empty(t, w.Body.String())
}
