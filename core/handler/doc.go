// Package handler defines the request-processing contracts shared by the mvc
// package and the middleware built on top of it.
//
// A controller method either returns a Response, a function that renders the
// outgoing HTTP response, or a value the framework turns into one:
//
//	func (c *UsersController) Show(ctx handler.Context, id int) handler.Response {
//		return response.JSON(c.users.Get(ctx, id))
//	}
//
// Context extends context.Context with access to the request, the response
// writer and path parameters. ErrorHandler receives every error produced while
// binding arguments, calling the method or rendering the response.
package handler
