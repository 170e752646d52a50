// Package middleware provides ready-made decorators and after functions for
// mvc endpoints.
//
// SecurityHeaders, NoCache and Cache are method decorators built on mvc.Header,
// so their headers are set after the controller method returned and before the
// response renders:
//
//	app.Endpoint(ctrl, "Dashboard",
//		mvc.OnMethod(
//			middleware.SecurityHeaders(middleware.BalancedSecurity),
//			middleware.NoCache(),
//			mvc.UseAfter(middleware.RequestID(middleware.RequestIDConfig{})),
//		),
//	)
//
// RequestID is an mvc.AfterFunc. It sets X-Request-ID to a fresh UUID, or to
// the client's value when UseExisting is set.
package middleware
