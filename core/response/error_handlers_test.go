package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/response"
)

// testContext is a simple test implementation of handler.Context
type testContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (tc *testContext) Deadline() (deadline time.Time, ok bool) { return tc.r.Context().Deadline() }
func (tc *testContext) Done() <-chan struct{}                   { return tc.r.Context().Done() }
func (tc *testContext) Err() error                              { return tc.r.Context().Err() }
func (tc *testContext) Value(key any) any                       { return tc.r.Context().Value(key) }
func (tc *testContext) SetValue(key, val any)                   {}
func (tc *testContext) Request() *http.Request                  { return tc.r }
func (tc *testContext) ResponseWriter() http.ResponseWriter     { return tc.w }
func (tc *testContext) Param(key string) string                 { return "" }

// customStatusError is a test error that implements StatusCode() int
type customStatusError struct {
	message string
	status  int
}

func (e customStatusError) Error() string   { return e.message }
func (e customStatusError) StatusCode() int { return e.status }

// wrappedHTTPError embeds an HTTPError the way parameter errors do.
type wrappedHTTPError struct {
	response.HTTPError
}

func (e wrappedHTTPError) Unwrap() error { return e.HTTPError }

func newTestContext() (*testContext, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	return &testContext{w: w, r: httptest.NewRequest(http.MethodGet, "/", nil)}, w
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "http_error",
			err:            response.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Not Found",
		},
		{
			name:           "wrapped_http_error",
			err:            wrappedHTTPError{response.ErrBadRequest.WithMessage("Bad request, parameter request.query.id.")},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Bad request, parameter request.query.id.",
		},
		{
			name:           "status_code_interface",
			err:            customStatusError{message: "gone", status: http.StatusUnprocessableEntity},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Unprocessable Entity",
		},
		{
			name:           "unknown_status_defaults_to_500",
			err:            customStatusError{message: "teapot", status: http.StatusTeapot},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "plain_error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, w := newTestContext()
			response.ErrorHandler(ctx, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("http_error", func(t *testing.T) {
		t.Parallel()

		ctx, w := newTestContext()
		response.JSONErrorHandler(ctx, response.ErrBadRequest.WithMessage("missing id"))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "bad_request", body["code"])
		assert.Equal(t, "missing id", body["message"])
	})

	t.Run("plain_error_carries_cause", func(t *testing.T) {
		t.Parallel()

		ctx, w := newTestContext()
		response.JSONErrorHandler(ctx, errors.New("db down"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"code":"internal_server_error","message":"Internal Server Error","details":{"cause":"db down"}}`, w.Body.String())
	})
	t.Run("replaces_declared_content_type", func(t *testing.T) {
		t.Parallel()

		ctx, w := newTestContext()
		w.Header().Set("Content-Type", "text/csv")
		response.JSONErrorHandler(ctx, response.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	})
}
