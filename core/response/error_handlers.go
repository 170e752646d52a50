package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/mvc/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// convertToHTTPError converts any error to an HTTPError.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError

	// Also matches errors embedding an HTTPError that unwrap to it
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	// Attach the original error
	return baseErr.WithError(err)
}

// ErrorHandler writes errors as plain text.
// It checks for HTTPError first, then the statusCode interface, and defaults to 500.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler writes errors as JSON HTTPError bodies.
//
//	app := mvc.New(mvc.WithErrorHandler(response.JSONErrorHandler[handler.Context]))
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

func render[C handler.Context](ctx C, resp handler.Response) {
	w := ctx.ResponseWriter()
	// Error bodies always carry their own content type.
	w.Header().Del("Content-Type")
	if err := resp(w, ctx.Request()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
