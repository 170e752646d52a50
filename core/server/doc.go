// Package server runs an http.Handler with graceful shutdown.
//
// Config carries env tags for config.Load, and Run plugs into errgroup:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, mux))
//	return eg.Wait()
package server
