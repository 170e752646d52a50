package mvc

import (
	"net/http"

	"github.com/dmitrymomot/mvc/core/binder"
)

// Filter reads one request source for parameter binding. Its name is the raw
// name reported by ExpressionError, so HeaderParamsFilter failures read
// "parameter request.header.<field>".
type Filter interface {
	Name() string
	// Values returns the raw values of field, or nil when absent.
	Values(r *http.Request, field string) []string
	// All returns the whole source, or nil when it cannot be enumerated.
	All(r *http.Request) map[string][]string
	// Bind fills a struct from the source using its struct tags.
	Bind(r *http.Request, v any) error
}

// Request sources available to parameter decorators.
var (
	HeaderParamsFilter Filter = sourceFilter{
		name:   "HeaderParamsFilter",
		values: func(r *http.Request, field string) []string { return r.Header.Values(field) },
		all:    func(r *http.Request) map[string][]string { return r.Header.Clone() },
		bind:   binder.Header(),
	}

	QueryParamsFilter Filter = sourceFilter{
		name:   "QueryParamsFilter",
		values: func(r *http.Request, field string) []string { return r.URL.Query()[field] },
		all:    func(r *http.Request) map[string][]string { return r.URL.Query() },
		bind:   binder.Query(),
	}

	PathParamsFilter Filter = sourceFilter{
		name: "PathParamsFilter",
		values: func(r *http.Request, field string) []string {
			if v := r.PathValue(field); v != "" {
				return []string{v}
			}
			return nil
		},
		all:  func(*http.Request) map[string][]string { return nil },
		bind: binder.Path(pathValue),
	}
)

func pathValue(r *http.Request, name string) string {
	return r.PathValue(name)
}

type sourceFilter struct {
	name   string
	values func(r *http.Request, field string) []string
	all    func(r *http.Request) map[string][]string
	bind   binder.Binder
}

func (f sourceFilter) Name() string { return f.name }

func (f sourceFilter) Values(r *http.Request, field string) []string { return f.values(r, field) }

func (f sourceFilter) All(r *http.Request) map[string][]string { return f.all(r) }

func (f sourceFilter) Bind(r *http.Request, v any) error { return f.bind(r, v) }
