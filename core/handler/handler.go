package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are passed to the endpoint's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)
