package commands

import "github.com/dmitrymomot/recordkit/pkg/config"

// Config holds environment-backed defaults for the CLI. Flags override these
// values when set. A .env file in the working directory is honored.
type Config struct {
	LogLevel  string `env:"RECORDKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RECORDKIT_LOG_FORMAT" envDefault:"text"`
	Encoding  string `env:"RECORDKIT_ENCODING" envDefault:"utf-8"`
	Delimiter string `env:"RECORDKIT_DELIMITER" envDefault:","`
	Workers   int    `env:"RECORDKIT_WORKERS" envDefault:"1"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
