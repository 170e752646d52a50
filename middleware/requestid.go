package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mvc"
)

// RequestIDConfig configures the request ID after function.
type RequestIDConfig struct {
	// Skip defines a function to skip execution for specific requests
	Skip func(r *http.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID sent by the client
	UseExisting bool
}

// RequestID returns an after function that sets a request ID on the response.
//
//	app.Endpoint(ctrl, "Show",
//		mvc.OnMethod(mvc.UseAfter(middleware.RequestID(middleware.RequestIDConfig{UseExisting: true}))),
//	)
func RequestID(cfg RequestIDConfig) mvc.AfterFunc {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(r *http.Request, w mvc.ResponseWriter, next func()) {
		if cfg.Skip != nil && cfg.Skip(r) {
			next()
			return
		}

		var requestID string

		// Try to use existing request ID from incoming headers if configured
		if cfg.UseExisting {
			requestID = r.Header.Get(cfg.HeaderName)
		}

		if requestID == "" {
			requestID = cfg.Generator()
		}

		w.Set(cfg.HeaderName, requestID)
		next()
	}
}
