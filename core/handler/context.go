package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts handed to controller methods
// and error handlers.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
