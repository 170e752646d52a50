package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor function is called for each struct field to get its path parameter value.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// With the standard library mux, pass a function reading http.Request.PathValue:
//
//	type ProfileRequest struct {
//		UserID   int    `path:"id"`
//		Username string `path:"username"`
//	}
//
//	pathValue := func(r *http.Request, name string) string { return r.PathValue(name) }
//	var req ProfileRequest
//	err := binder.Path(pathValue)(r, &req)
func Path(extractor func(r *http.Request, fieldName string) string) Binder {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}
		lookup := func(name string) []string {
			value := extractor(r, name)
			if value == "" {
				return nil // Leave field as zero value when parameter is missing
			}
			return []string{value}
		}
		return bindToStruct(v, "path", lookup, ErrFailedToParsePath)
	}
}
