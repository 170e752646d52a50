// Package logger provides structured logging helpers built on log/slog.
//
// New builds a text or JSON logger from plain configuration values, and the
// attribute helpers keep log calls short and nil-safe:
//
//	log := logger.New(os.Stdout, cfg.LogLevel, logger.FormatJSON, logger.Component("api"))
//	log.Error("render failed", logger.Path(r.URL.Path), logger.Error(err))
//
// Discard is the default logger of every component that accepts one, so
// logging stays opt-in.
package logger
