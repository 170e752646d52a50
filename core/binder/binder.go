package binder

import "net/http"

// Binder represents a function that binds HTTP request data to a Go value.
// It provides a unified interface for extracting and mapping data from
// headers, query strings and path parameters into strongly-typed Go structures.
type Binder func(r *http.Request, v any) error
