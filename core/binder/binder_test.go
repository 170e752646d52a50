package binder_test

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/binder"
)

type traceHeaders struct {
	RequestID string   `header:"X-Request-ID"`
	Retries   int      `header:"x-retry-count"`
	Accept    []string `header:"Accept"`
	Debug     *bool    `header:"X-Debug"`
	Skipped   string   `header:"-"`
	internal  string
}

func TestHeader(t *testing.T) {
	t.Parallel()

	t.Run("binds_canonicalized_headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "req-1")
		req.Header.Set("X-Retry-Count", "3")
		req.Header.Add("Accept", "text/html, application/json")
		req.Header.Set("X-Debug", "yes")

		var h traceHeaders
		require.NoError(t, binder.Header()(req, &h))

		assert.Equal(t, "req-1", h.RequestID)
		assert.Equal(t, 3, h.Retries)
		assert.Equal(t, []string{"text/html", "application/json"}, h.Accept)
		require.NotNil(t, h.Debug)
		assert.True(t, *h.Debug)
		assert.Empty(t, h.Skipped)
		assert.Empty(t, h.internal)
	})

	t.Run("missing_headers_keep_zero_values", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var h traceHeaders
		require.NoError(t, binder.Header()(req, &h))
		assert.Empty(t, h.RequestID)
		assert.Nil(t, h.Debug)
	})

	t.Run("conversion_error", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Retry-Count", "many")

		var h traceHeaders
		err := binder.Header()(req, &h)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrFailedToParseHeader)
		assert.Contains(t, err.Error(), "Retries")
	})

	t.Run("non_pointer_target", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		err := binder.Header()(req, traceHeaders{})
		assert.ErrorIs(t, err, binder.ErrFailedToParseHeader)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type search struct {
		Query string   `query:"q"`
		Page  int      `query:"page,omitempty"`
		Tags  []string `query:"tags"`
	}

	req := httptest.NewRequest(http.MethodGet, "/?q=go&page=2&tags=a&tags=b,c", nil)

	var s search
	require.NoError(t, binder.Query()(req, &s))
	assert.Equal(t, "go", s.Query)
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, []string{"a", "b", "c"}, s.Tags)

	bad := httptest.NewRequest(http.MethodGet, "/?page=x", nil)
	assert.ErrorIs(t, binder.Query()(bad, &s), binder.ErrFailedToParseQuery)
}

func TestPath(t *testing.T) {
	t.Parallel()

	type profile struct {
		ID   int64  `path:"id"`
		Name string `path:"name"`
	}

	values := map[string]string{"id": "42"}
	extract := func(_ *http.Request, name string) string { return values[name] }

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)

	var p profile
	require.NoError(t, binder.Path(extract)(req, &p))
	assert.Equal(t, int64(42), p.ID)
	assert.Empty(t, p.Name)

	assert.ErrorIs(t, binder.Path(nil)(req, &p), binder.ErrFailedToParsePath)
}

func TestSetValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  any
		values  []string
		want    any
		wantErr error
	}{
		{name: "string_sanitized", target: new(string), values: []string{"a\r\nb\x00c"}, want: "abc"},
		{name: "int", target: new(int), values: []string{"-7"}, want: -7},
		{name: "uint8_overflow", target: new(uint8), values: []string{"300"}},
		{name: "float", target: new(float64), values: []string{"1.5"}, want: 1.5},
		{name: "bool_word", target: new(bool), values: []string{"off"}, want: false},
		{name: "slice", target: new([]int), values: []string{"1,2", "3"}, want: []int{1, 2, 3}},
		{name: "unsupported", target: new(map[string]string), values: []string{"x"}, wantErr: binder.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := reflect.ValueOf(tt.target).Elem()
			err := binder.SetValue(v, tt.values)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.want == nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, v.Interface())
			}
		})
	}

	t.Run("not_settable", func(t *testing.T) {
		t.Parallel()

		err := binder.SetValue(reflect.ValueOf(5), []string{"1"})
		assert.ErrorIs(t, err, binder.ErrUnsupportedType)
	})
}
