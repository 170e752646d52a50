// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is read once, on first use, via
// godotenv; variables already present in the environment win. Struct fields
// are parsed by caarlos0/env:
//
//	type Config struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Secret   string `env:"APP_SECRET,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Each config type is parsed once per process; later Load calls for the same
// type return the cached value, while different types are cached independently.
package config
