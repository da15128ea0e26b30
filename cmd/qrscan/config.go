package main

import (
	"time"

	"github.com/dmitrymomot/qrscan/pkg/httpserver"
	"github.com/dmitrymomot/qrscan/pkg/ratelimiter"
)

// Config is read from the environment, with ./.env preloaded when present.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	AppName  string `env:"APP_NAME" envDefault:"qrscan"`
	LogLevel string `env:"LOG_LEVEL"`

	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	FetchMaxBodySize int64         `env:"FETCH_MAX_BODY_SIZE" envDefault:"0"`
	FetchUserAgent   string        `env:"FETCH_USER_AGENT" envDefault:"qrscan/0.1.0"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}
