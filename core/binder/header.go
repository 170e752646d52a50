package binder

import "net/http"

// Header creates a request header binder function.
//
// Header names are matched case-insensitively, using the canonical MIME form:
//   - `header:"X-Request-ID"` - binds to the X-Request-Id header
//   - `header:"-"` - skips the field
//   - no tag - binds to the header named after the lowercased field name
//
// Repeated headers fill slice fields, and comma-separated values are split.
//
// Example:
//
//	type TraceHeaders struct {
//		RequestID string   `header:"X-Request-ID"`
//		Retries   int      `header:"X-Retry-Count"`
//		Accept    []string `header:"Accept"`
//	}
//
//	var h TraceHeaders
//	if err := binder.Header()(r, &h); err != nil {
//		return response.ErrBadRequest.WithError(err)
//	}
func Header() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "header", r.Header.Values, ErrFailedToParseHeader)
	}
}
