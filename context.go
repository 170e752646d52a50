package mvc

import (
	"net/http"
	"time"
)

// requestContext is the handler.Context handed to controller methods.
// It delegates all context.Context methods to the request's context.
type requestContext struct {
	w      *responseWriter
	r      *http.Request
	values map[any]any
}

func newRequestContext(w *responseWriter, r *http.Request) *requestContext {
	return &requestContext{w: w, r: r}
}

func (c *requestContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *requestContext) Err() error {
	return c.r.Context().Err()
}

// Value returns values stored with SetValue first, then the request context's.
func (c *requestContext) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *requestContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *requestContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the path wildcard named key, as matched by http.ServeMux.
func (c *requestContext) Param(key string) string {
	return c.r.PathValue(key)
}

// SetValue stores a value visible through Value for the rest of the request.
func (c *requestContext) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
