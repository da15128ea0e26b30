// Package config loads application configuration from environment variables
// into tagged structs.
//
// It combines github.com/joho/godotenv, which seeds the process environment
// from .env files, with github.com/caarlos0/env/v11, which parses the
// environment into struct fields:
//
//	type Config struct {
//		Env      string        `env:"APP_ENV" envDefault:"development"`
//		Timeout  time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Variables already present in the environment take precedence over values
// from .env files. A missing default .env file is not an error; a missing file
// passed with WithEnvFiles is.
package config
