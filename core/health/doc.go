// Package health provides a controller for service health probes.
//
//	hc := health.NewController(log, db.Ping, cache.Ping)
//	mux.Handle("GET /health/live", app.MustEndpoint(hc, "Live"))
//	mux.Handle("GET /health/ready", app.MustEndpoint(hc, "Ready", mvc.OnMethod(middleware.NoCache())))
//
// Live always answers "ALIVE". Ready runs every check and answers 204 when
// they all pass, 503 when one fails.
package health
