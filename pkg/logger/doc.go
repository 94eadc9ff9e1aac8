// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package exposes a single factory – New – that creates a *slog.Logger
// configured by a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level (WithLevel, or WithVerbose for CLI flags)
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from
//     a context value (for example the run id) every time Handle is invoked.
//
// # Architecture
//
// New picks the concrete slog.Handler – slog.NewTextHandler or
// slog.NewJSONHandler – based on the configured Format, then wraps it with
// LogHandlerDecorator, which executes any registered ContextExtractor
// callbacks before delegating to the underlying handler.
//
// Helper constructors such as Error, Component, File, Rows and RunID live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithVerbose(verboseFlag),
//	    logger.WithContextValue("run_id", ctxKeyRunID),
//	)
//	logger.SetAsDefault(log)
//
//	ctx := context.WithValue(context.Background(), ctxKeyRunID, runID)
//	log.InfoContext(ctx, "validation finished",
//	    logger.Rows(result.TotalRecords),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, allowing calls like
//
//	log.Info("run finished", logger.Error(err))
//
// without an additional nil check.
package logger
