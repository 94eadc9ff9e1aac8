package commands

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/progress"
)

// runIDKey carries the run ID through contexts so the logger decorator can
// stamp it on every record.
type runIDKey struct{}

// newLogger builds the process logger from env config and the verbose flag.
// It goes to stderr, keeping stdout free for progress output.
func newLogger(cfg Config, verbosity int) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid RECORDKIT_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("invalid RECORDKIT_LOG_FORMAT %q: must be %q or %q", cfg.LogFormat, logger.FormatText, logger.FormatJSON)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithVerbose(verbosity > 0),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	logger.SetAsDefault(log)
	return log, nil
}

// newEmitter picks the progress surface: JSON events on stdout for machine
// consumers, colored terminal output otherwise.
func newEmitter(jsonOutput bool, verbosity int) progress.Emitter {
	if jsonOutput {
		return progress.NewJSONEmitter(os.Stdout)
	}
	return progress.NewCLIEmitter(verbosity)
}

// delimiterRune converts the configured delimiter string to the rune the CSV
// layer expects.
func delimiterRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
