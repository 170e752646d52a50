package binder

import "errors"

// Error variables define common binding failures that can occur during request processing.
var (
	// ErrFailedToParseQuery indicates query parameter parsing failed,
	// typically due to type conversion errors.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter extraction or conversion failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")

	// ErrFailedToParseHeader indicates a request header could not be converted
	// into the target field type.
	ErrFailedToParseHeader = errors.New("failed to parse request headers")

	// ErrUnsupportedType is returned by SetValue for kinds it cannot convert into.
	ErrUnsupportedType = errors.New("unsupported target type")
)
