package mvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"runtime/debug"

	"github.com/dmitrymomot/mvc/core/handler"
	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/response"
)

var (
	handlerContextType = reflect.TypeFor[handler.Context]()
	contextType        = reflect.TypeFor[context.Context]()
	requestType        = reflect.TypeFor[*http.Request]()
	responseWriterType = reflect.TypeFor[http.ResponseWriter]()
	responseType       = reflect.TypeFor[handler.Response]()
	errorType          = reflect.TypeFor[error]()
)

type argKind uint8

const (
	argZero argKind = iota
	argBound
	argHandlerContext
	argContext
	argRequest
	argResponseWriter
)

type argPlan struct {
	kind  argKind
	typ   reflect.Type
	param Param
}

type resultKind uint8

const (
	resultNone resultKind = iota
	resultResponse
	resultError
	resultValue
)

// endpoint serves one decorated controller method.
type endpoint struct {
	app      *App
	name     string
	fn       reflect.Value
	args     []argPlan
	result   resultKind
	hasError bool // last result is an error
	after    []AfterFunc
}

func newEndpoint(a *App, desc *Descriptor, meta EndpointMeta) (*endpoint, error) {
	ep := &endpoint{
		app:   a,
		name:  fmt.Sprintf("%T.%s", desc.Target, desc.Method),
		fn:    desc.Func,
		args:  make([]argPlan, desc.Type.NumIn()),
		after: meta.After,
	}

	for i := range ep.args {
		typ := desc.Type.In(i)
		plan := argPlan{typ: typ}

		if p, ok := meta.Params[i]; ok {
			if p.Field == "" && !supportsWhole(typ) {
				return nil, fmt.Errorf("%w: %s parameter %d of type %s cannot receive the whole %s source",
					ErrUnsupportedParam, ep.name, i, typ, p.Filter.Name())
			}
			plan.kind = argBound
			plan.param = p
		} else {
			switch typ {
			case handlerContextType:
				plan.kind = argHandlerContext
			case contextType:
				plan.kind = argContext
			case requestType:
				plan.kind = argRequest
			case responseWriterType:
				plan.kind = argResponseWriter
			default:
				plan.kind = argZero
			}
		}
		ep.args[i] = plan
	}

	if err := ep.planResults(desc.Type); err != nil {
		return nil, err
	}
	return ep, nil
}

// planResults accepts (), (T), (error) and (T, error), where T is a
// handler.Response or a value rendered as JSON.
func (e *endpoint) planResults(typ reflect.Type) error {
	switch typ.NumOut() {
	case 0:
		e.result = resultNone
		return nil
	case 1:
		e.result = classifyResult(typ.Out(0))
		e.hasError = e.result == resultError
		return nil
	case 2:
		if typ.Out(1) != errorType || typ.Out(0) == errorType {
			return fmt.Errorf("%w: %s returns (%s, %s)", ErrUnsupportedResult, e.name, typ.Out(0), typ.Out(1))
		}
		e.result = classifyResult(typ.Out(0))
		e.hasError = true
		return nil
	default:
		return fmt.Errorf("%w: %s returns %d values", ErrUnsupportedResult, e.name, typ.NumOut())
	}
}

func classifyResult(typ reflect.Type) resultKind {
	switch typ {
	case responseType:
		return resultResponse
	case errorType:
		return resultError
	default:
		return resultValue
	}
}

// ServeHTTP implements http.Handler.
func (e *endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Track response state
	ww := &responseWriter{ResponseWriter: w}
	ctx := newRequestContext(ww, r)

	// Panic recovery
	defer func() {
		if v := recover(); v != nil {
			err := &panicError{value: v, stack: debug.Stack()}
			e.app.logger.ErrorContext(r.Context(), "panic recovered",
				logger.Endpoint(e.name),
				logger.Error(err),
				logger.Key("stack", string(err.stack)),
			)
			if !ww.Written() {
				e.app.errorHandler(ctx, err)
			}
		}
	}()

	args, err := e.bind(ctx)
	if err != nil {
		e.fail(ctx, err)
		return
	}

	resp, err := e.call(args)

	rendered := false
	runAfter(e.after, r, ww, func() {
		rendered = true
		if err != nil {
			e.fail(ctx, err)
			return
		}
		if err := resp(ww, r); err != nil && !ww.Written() {
			e.fail(ctx, err)
		}
	})

	if !rendered {
		e.app.logger.WarnContext(r.Context(), "after function did not continue, response not rendered",
			logger.Endpoint(e.name),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)
	}
}

// bind builds the method arguments for the request.
func (e *endpoint) bind(ctx *requestContext) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(e.args))
	for i, plan := range e.args {
		switch plan.kind {
		case argBound:
			v, err := plan.param.resolve(ctx.r, plan.typ)
			if err != nil {
				return nil, err
			}
			args[i] = v
		case argHandlerContext, argContext:
			args[i] = reflect.ValueOf(ctx)
		case argRequest:
			args[i] = reflect.ValueOf(ctx.r)
		case argResponseWriter:
			args[i] = reflect.ValueOf(ctx.w)
		default:
			args[i] = reflect.Zero(plan.typ)
		}
	}
	return args, nil
}

// call invokes the method and converts its results into a response.
func (e *endpoint) call(args []reflect.Value) (handler.Response, error) {
	out := e.fn.Call(args)

	// A final error result takes precedence.
	if e.hasError {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}

	switch e.result {
	case resultResponse:
		resp, _ := out[0].Interface().(handler.Response)
		if resp == nil {
			return nil, ErrNilResponse
		}
		return resp, nil
	case resultValue:
		return response.JSON(out[0].Interface()), nil
	default:
		return response.NoContent(), nil
	}
}

// fail logs err by severity and hands it to the error handler.
func (e *endpoint) fail(ctx *requestContext, err error) {
	status := statusOf(err)
	attrs := []any{
		logger.Endpoint(e.name),
		logger.Method(ctx.r.Method),
		logger.Path(ctx.r.URL.Path),
		logger.StatusCode(status),
		logger.RequestID(ctx.w.Header().Get("X-Request-ID")),
		logger.Error(err),
	}

	var pe PanicError
	switch {
	case errors.As(err, &pe), status >= http.StatusInternalServerError:
		e.app.logger.ErrorContext(ctx, "request failed", attrs...)
	default:
		e.app.logger.DebugContext(ctx, "request rejected", attrs...)
	}

	e.app.errorHandler(ctx, err)
}
