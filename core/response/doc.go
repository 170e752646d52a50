// Package response provides the small set of handler.Response constructors used
// by mvc endpoints (plain text, JSON, empty statuses) and HTTPError, the base
// client/server error type.
//
// HTTPError carries a status code, a machine-readable code and a message.
// Predefined values such as ErrBadRequest are meant to be copied and customized:
//
//	return response.ErrBadRequest.WithMessage("missing tenant")
//
// Any error exposing StatusCode() int is rendered with that status by the mvc
// default error handler. ErrorHandler and JSONErrorHandler are drop-in
// replacements that always answer with an HTTPError body.
package response
