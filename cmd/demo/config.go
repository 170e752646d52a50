package main

import (
	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/server"
)

// Config is loaded from the environment and an optional .env file.
type Config struct {
	AppName   string        `env:"APP_NAME" envDefault:"mvc-demo"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
	Server    server.Config
}
