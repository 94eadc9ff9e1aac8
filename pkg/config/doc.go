// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (falling back to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes MustLoad for configuration the process cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type Config struct {
//	    LogLevel  string `env:"RECORDKIT_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"RECORDKIT_LOG_FORMAT" envDefault:"text"`
//	    Workers   int    `env:"RECORDKIT_WORKERS" envDefault:"1"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - ErrParsingConfig – failed to parse env vars into the struct.
//   - ErrLoadingEnv    – a named .env file could not be loaded.
//   - ErrNilPointer    – nil pointer passed to Load/MustLoad.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
