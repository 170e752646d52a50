package mvc

import (
	"fmt"
	"net/http"
)

// ResponseWriter is the response handed to after functions: a standard
// http.ResponseWriter plus a Set shorthand for response headers.
type ResponseWriter interface {
	http.ResponseWriter
	Set(name, value string)
}

// AfterFunc runs after the controller method returned and before the response
// renders. It must call next exactly once to let the pipeline continue.
type AfterFunc func(r *http.Request, w ResponseWriter, next func())

// AfterRegistrar records after functions for a controller method.
type AfterRegistrar interface {
	RegisterAfter(target any, method string, descriptor *Descriptor, fn AfterFunc) error
}

// UseAfter registers fn to run after the decorated method, in DefaultRegistry.
func UseAfter(fn AfterFunc) Decorator {
	return UseAfterWith(DefaultRegistry, fn)
}

// UseAfterWith registers fn with reg. It only applies to methods.
func UseAfterWith(reg AfterRegistrar, fn AfterFunc) Decorator {
	return func(target any, propertyKey string, descriptor any) error {
		site, err := resolveTarget(descriptor)
		if err != nil {
			return err
		}
		if site.Kind != MethodTarget {
			return fmt.Errorf("%w: UseAfter on %s parameter %d", ErrMethodSiteRequired, propertyKey, site.ParameterIndex)
		}
		return reg.RegisterAfter(target, propertyKey, site.Descriptor, fn)
	}
}

// runAfter calls fns in order, each one continuing to the next through its
// next callback, and calls final once the last one continues.
// Repeated next calls are ignored.
func runAfter(fns []AfterFunc, r *http.Request, w ResponseWriter, final func()) {
	var step func(i int)
	step = func(i int) {
		if i == len(fns) {
			final()
			return
		}
		called := false
		fns[i](r, w, func() {
			if called {
				return
			}
			called = true
			step(i + 1)
		})
	}
	step(0)
}
