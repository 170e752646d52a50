// Package binder maps request data (headers, query strings, path parameters)
// into Go values.
//
// Struct binders read a struct tag per source:
//
//	type ListRequest struct {
//		Tenant string `header:"X-Tenant"`
//		Page   int    `query:"page"`
//		ID     int64  `path:"id"`
//	}
//
//	var req ListRequest
//	for _, bind := range []binder.Binder{binder.Header(), binder.Query(), binder.Path(pathValue)} {
//		if err := bind(r, &req); err != nil {
//			return err
//		}
//	}
//
// SetValue exposes the same string conversion for single values. The mvc
// package uses it to turn one header, query or path value into a controller
// method argument.
//
// Failures wrap one of the sentinel errors (ErrFailedToParseHeader,
// ErrFailedToParseQuery, ErrFailedToParsePath, ErrUnsupportedType) so callers
// can use errors.Is.
package binder
