package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mvc"
	"github.com/dmitrymomot/mvc/core/health"
)

func TestController(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("db down") }

	tests := []struct {
		name     string
		method   string
		checks   []health.Check
		wantCode int
		wantBody string
	}{
		{name: "live", method: "Live", wantCode: http.StatusOK, wantBody: "ALIVE"},
		{name: "ready_without_checks", method: "Ready", wantCode: http.StatusNoContent},
		{name: "ready", method: "Ready", checks: []health.Check{ok, ok}, wantCode: http.StatusNoContent},
		{name: "not_ready", method: "Ready", checks: []health.Check{ok, down}, wantCode: http.StatusServiceUnavailable, wantBody: "Service Unavailable\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := mvc.New(mvc.WithRegistry(mvc.NewRegistry()))
			h := app.MustEndpoint(health.NewController(nil, tt.checks...), tt.method)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
