package mvc

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/mvc/core/handler"
)

var (
	// Decoration errors
	ErrUnsupportedDescriptor = errors.New("unsupported decoration descriptor")
	ErrInvalidExpression     = errors.New("invalid header expression")
	ErrParamSiteRequired     = errors.New("decorator applies to method parameters only")
	ErrMethodSiteRequired    = errors.New("decorator applies to methods only")
	ErrNilDecorator          = errors.New("nil decorator")

	// Registry errors
	ErrNilTarget         = errors.New("nil controller target")
	ErrParamAlreadyBound = errors.New("parameter already bound")
	ErrInvalidParamIndex = errors.New("invalid parameter index")
	ErrNilAfterFunc      = errors.New("nil after function")

	// Endpoint errors
	ErrMethodNotFound    = errors.New("controller method not found")
	ErrUnsupportedParam  = errors.New("unsupported parameter type")
	ErrUnsupportedResult = errors.New("unsupported method results")
	ErrNilResponse       = errors.New("nil response")
)

// statusCode is implemented by errors that carry their own HTTP status,
// such as response.HTTPError and ExpressionError.
type statusCode interface {
	StatusCode() int
}

// statusOf returns the HTTP status for err, defaulting to 500.
func statusOf(err error) int {
	var sc statusCode
	if errors.As(err, &sc) {
		if status := sc.StatusCode(); status >= 400 && status <= 599 {
			return status
		}
	}
	return http.StatusInternalServerError
}

// defaultErrorHandler writes err as plain text with its status code.
func defaultErrorHandler(ctx handler.Context, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	http.Error(w, err.Error(), statusOf(err))
}

// PanicError lets error handlers detect recovered panics.
// It carries the original panic value and the stack captured at the panic point.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with panics raised with an error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
