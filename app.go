package mvc

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mvc/core/handler"
	"github.com/dmitrymomot/mvc/core/logger"
)

// App turns decorated controller methods into http.Handlers.
type App struct {
	registry     *Registry
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures an App during creation.
type Option func(*App)

// WithRegistry sets the registry decorators record into and endpoints read from.
// Decorators bound to another registry must be built with the *With variants.
func WithRegistry(r *Registry) Option {
	return func(a *App) {
		if r != nil {
			a.registry = r
		}
	}
}

// WithLogger sets the logger for endpoint registration and request errors.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithErrorHandler sets a custom error handler for every endpoint.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// New creates an App using DefaultRegistry, a discarding logger and the
// plain-text error handler unless options say otherwise.
func New(opts ...Option) *App {
	a := &App{
		registry:     DefaultRegistry,
		logger:       logger.Discard(),
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Endpoint applies sites to target's method and returns the handler serving it.
//
//	h, err := app.Endpoint(ctrl, "Show",
//		mvc.OnMethod(mvc.Header("Cache-Control", "no-store")),
//		mvc.OnParam(0, mvc.PathParams("id", mvc.Required())),
//	)
//	mux.Handle("GET /users/{id}", h)
//
// Declarations are recorded per controller type. Sites are applied the first
// time a method of that type is built; later calls, for other instances of the
// same type, reuse those declarations and ignore their own sites.
func (a *App) Endpoint(target any, method string, sites ...Site) (http.Handler, error) {
	desc, err := NewDescriptor(target, method)
	if err != nil {
		return nil, err
	}
	if desc.Type.IsVariadic() {
		return nil, fmt.Errorf("%w: %T.%s is variadic", ErrUnsupportedParam, target, method)
	}

	for _, site := range sites {
		if site.param && site.index >= desc.Type.NumIn() {
			return nil, fmt.Errorf("%w: %d, %T.%s takes %d", ErrInvalidParamIndex, site.index, target, method, desc.Type.NumIn())
		}
	}

	err = a.registry.decorateOnce(target, method, func() error {
		for _, site := range sites {
			if err := site.apply(desc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decorate %T.%s: %w", target, method, err)
	}

	ep, err := newEndpoint(a, desc, a.registry.Endpoint(target, method))
	if err != nil {
		return nil, err
	}

	a.logger.Debug("endpoint registered",
		logger.Endpoint(ep.name),
		logger.Key("params", len(ep.args)),
		logger.Key("after", len(ep.after)),
	)
	return ep, nil
}

// MustEndpoint is like Endpoint but panics on error.
func (a *App) MustEndpoint(target any, method string, sites ...Site) http.Handler {
	h, err := a.Endpoint(target, method, sites...)
	if err != nil {
		panic(err)
	}
	return h
}
