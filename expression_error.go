package mvc

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dmitrymomot/mvc/core/response"
)

// filterNoise matches the words stripped from a filter name when it is
// reported as a request location.
var filterNoise = regexp.MustCompile(`(?i)parse|params|filter`)

// ExpressionError reports a request value that failed a parameter binding.
// It is a 400 Bad Request whose message locates the value:
//
//	Bad request, parameter request.header.x-trace. is required
type ExpressionError struct {
	response.HTTPError

	RawName     string // name of the binding that failed, e.g. "HeaderParamsFilter"
	CleanedName string // RawName lowercased without parse/params/filter
	Expression  any    // field name or pattern that was evaluated
	Extra       string // detail appended to the message
}

// NewExpressionError builds the error for the binding name that evaluated
// expression. Non-empty msg parts are joined with spaces.
func NewExpressionError(name string, expression any, msg ...string) ExpressionError {
	extra := joinMessage(msg)
	return ExpressionError{
		HTTPError: response.ErrBadRequest.
			WithMessage(BuildExpressionMessage(name, expression, extra)),
		RawName:     name,
		CleanedName: cleanName(name),
		Expression:  expression,
		Extra:       extra,
	}
}

// BuildExpressionMessage formats the message of an ExpressionError.
//
//	BuildExpressionMessage("parseHeaderParams", "x-foo")
//	// Bad request, parameter request.header.x-foo.
func BuildExpressionMessage(name string, expression any, msg ...string) string {
	message := fmt.Sprintf("Bad request, parameter request.%s.%s.", cleanName(name), renderExpression(expression))
	if extra := joinMessage(msg); extra != "" {
		message += " " + extra
	}
	return strings.TrimSpace(message)
}

// Unwrap exposes the embedded HTTPError to errors.As.
func (e ExpressionError) Unwrap() error {
	return e.HTTPError
}

// StatusCode is always 400.
func (e ExpressionError) StatusCode() int {
	return http.StatusBadRequest
}

func cleanName(name string) string {
	return filterNoise.ReplaceAllString(strings.ToLower(name), "")
}

func renderExpression(expression any) string {
	switch e := expression.(type) {
	case nil:
		return ""
	case string:
		return e
	case *regexp.Regexp:
		return "/" + e.String() + "/"
	case fmt.Stringer:
		return e.String()
	default:
		return fmt.Sprint(e)
	}
}

func joinMessage(msg []string) string {
	parts := make([]string, 0, len(msg))
	for _, m := range msg {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, " ")
}
