package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mvc"
	"github.com/dmitrymomot/mvc/core/config"
	"github.com/dmitrymomot/mvc/core/handler"
	"github.com/dmitrymomot/mvc/core/health"
	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/response"
	"github.com/dmitrymomot/mvc/core/server"
	"github.com/dmitrymomot/mvc/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat, logger.Component(cfg.AppName))

	app := mvc.New(
		mvc.WithLogger(log),
		mvc.WithErrorHandler(response.JSONErrorHandler[handler.Context]),
	)
	mux := http.NewServeMux()

	if err := routes(app, mux, newNotesController()); err != nil {
		log.Error("Failed to register endpoints", logger.Component("mvc"), logger.Error(err))
		os.Exit(1)
	}

	hc := health.NewController(log)
	mux.Handle("GET /health/live", app.MustEndpoint(hc, "Live"))
	mux.Handle("GET /health/ready", app.MustEndpoint(hc, "Ready", mvc.OnMethod(middleware.NoCache())))

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, mux))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
