// Package mvc declares controller behavior with decorators and serves
// decorated controller methods as plain http.Handlers.
//
// A decorator is applied at a site: the controller method itself or one of its
// parameters. Header is the central one and works at both kinds of site.
// On a method it sets response headers once the method returned and before the
// response renders. On a parameter it binds the named request header to the
// argument.
//
//	type ReportsController struct{}
//
//	func (ReportsController) Export(ctx handler.Context, trace string, q ExportQuery) handler.Response {
//		return response.String("id,name\n")
//	}
//
//	app := mvc.New(mvc.WithLogger(log))
//	h := app.MustEndpoint(ReportsController{}, "Export",
//		mvc.OnMethod(
//			mvc.Header("Content-Type", "text/csv"),
//			mvc.Header(mvc.Fields{{Name: "Cache-Control", Value: "no-store"}}),
//		),
//		mvc.OnParam(1, mvc.Header("X-Trace")),
//		mvc.OnParam(2, mvc.QueryParams("")),
//	)
//	mux.Handle("GET /reports/export", h)
//
// # Parameters
//
// HeaderParams, QueryParams and PathParams bind an argument to one field of a
// request source, or to the whole source when the field is empty. Unbound
// arguments of type handler.Context, context.Context, *http.Request and
// http.ResponseWriter are injected, and any other unbound argument is its zero
// value. A value that is missing, fails its pattern or cannot be converted is
// reported as an ExpressionError, a 400 Bad Request such as:
//
//	Bad request, parameter request.header.x-trace. is required
//
// # After functions
//
// UseAfter registers an AfterFunc that runs after the method returned. After
// functions run in registration order, each one continuing the pipeline by
// calling next, and the response renders once the last one continues.
//
// # Registry
//
// Declarations are recorded in a Registry per controller type and method name,
// DefaultRegistry unless HeaderWith, UseAfterWith or ParamsWith name another.
// Endpoints snapshot their declarations when built.
package mvc
