package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/batch"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/progress"
	"github.com/dmitrymomot/recordkit/pkg/report"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

// ValidateCmd validates a CSV export against the customer schema
var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CSV export against the customer schema",
	Long: `Validate every record of a CSV export against the customer field schema.

The run reads the whole file, checks each record exhaustively (every field,
every check), and splits the batch:
- records with no failures are re-exported as a CSV of valid records
- every failure lands in a plain-text error report next to the input

Both outputs are skipped when they would be empty: an all-valid run writes
no report, a run with no valid records writes no export. A run only fails
(exit code 1) for fatal problems such as an unreadable input, a column
missing from the header, or an invalid schema file; invalid records are the
expected outcome, not an error.

Examples:
  recordkit validate                           # Validate ./customers.csv
  recordkit validate -i export.csv -v          # Verbose progress
  recordkit validate -i export.csv --json      # One JSON event per line
  recordkit validate --schema fields.yaml      # Custom field schema
  recordkit validate --workers 4               # Parallel validation
  recordkit validate --encoding latin-1        # Legacy spreadsheet export`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		reportDir, _ := cmd.Flags().GetString("report-dir")
		schemaPath, _ := cmd.Flags().GetString("schema")
		encoding, _ := cmd.Flags().GetString("encoding")
		workers, _ := cmd.Flags().GetInt("workers")
		strict, _ := cmd.Flags().GetBool("strict")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")

		if encoding == "" {
			encoding = cfg.Encoding
		}
		if workers <= 0 {
			workers = cfg.Workers
		}
		if output == "" {
			output = filepath.Join(filepath.Dir(input), "customers_valid.csv")
		}
		if reportDir == "" {
			reportDir = filepath.Dir(input)
		}

		delimiter, err := delimiterRune(cfg.Delimiter)
		if err != nil {
			return err
		}

		log, err := newLogger(cfg, verbosity)
		if err != nil {
			return err
		}

		runID := uuid.NewString()
		ctx := context.WithValue(cmd.Context(), runIDKey{}, runID)

		return runValidate(ctx, validateOptions{
			Input:      input,
			Output:     output,
			ReportDir:  reportDir,
			SchemaPath: schemaPath,
			Encoding:   encoding,
			Delimiter:  delimiter,
			Workers:    workers,
			Strict:     strict,
			RunID:      runID,
			Emitter:    newEmitter(jsonOutput, verbosity),
			Log:        log,
		})
	},
}

func init() {
	ValidateCmd.Flags().StringP("input", "i", "customers.csv", "Input CSV file to validate")
	ValidateCmd.Flags().StringP("output", "o", "", "Valid-records CSV path (default <input dir>/customers_valid.csv)")
	ValidateCmd.Flags().String("report-dir", "", "Directory for the error report (default input dir)")
	ValidateCmd.Flags().String("schema", "", "YAML schema file (default built-in customer schema)")
	ValidateCmd.Flags().String("encoding", "", "Input/output encoding: utf-8, latin-1, windows-1252 (default from env)")
	ValidateCmd.Flags().Int("workers", 0, "Goroutines validating records (default from env)")
	ValidateCmd.Flags().Bool("strict", false, "Fail on input columns the schema does not declare")
	ValidateCmd.Flags().Bool("json", false, "Emit machine-readable JSON progress events on stdout")
}

// validateOptions carries everything runValidate needs, resolved from flags
// and env config.
type validateOptions struct {
	Input      string
	Output     string
	ReportDir  string
	SchemaPath string
	Encoding   string
	Delimiter  rune
	Workers    int
	Strict     bool
	RunID      string
	Emitter    progress.Emitter
	Log        *slog.Logger
}

// runValidate executes the full pipeline: read, validate, report, export.
// It returns an error only for fatal, run-aborting conditions; a batch full
// of invalid records still returns nil with the report written.
func runValidate(ctx context.Context, opts validateOptions) error {
	start := time.Now()
	em := opts.Emitter
	log := opts.Log

	fail := func(stage string, err error) error {
		em.Fail(stage, err)
		log.ErrorContext(ctx, "validation run aborted",
			logger.Component("validate"),
			slog.String("stage", stage),
			logger.Error(err))
		return err
	}

	s := schema.Customers()
	if opts.SchemaPath != "" {
		loaded, err := schema.Load(opts.SchemaPath)
		if err != nil {
			return fail("schema", err)
		}
		s = loaded
		log.DebugContext(ctx, "schema loaded", logger.File(opts.SchemaPath), slog.Int("fields", len(s.Fields)))
	}
	if opts.Strict {
		s.Strict = true
	}

	engine, err := batch.New(s, batch.WithWorkers(opts.Workers))
	if err != nil {
		return fail("schema", err)
	}

	em.Stage("read", "loading "+opts.Input)
	if _, err := os.Stat(opts.Input); errors.Is(err, fs.ErrNotExist) {
		return fail("read", fmt.Errorf("input file %q not found: run \"recordkit generate\" to create a sample export", opts.Input))
	}
	src := tabular.NewCSVSource(opts.Input,
		tabular.WithEncoding(opts.Encoding),
		tabular.WithComma(opts.Delimiter))
	table, err := src.ReadAll(ctx)
	if err != nil {
		return fail("read", err)
	}
	log.DebugContext(ctx, "input loaded",
		logger.File(opts.Input),
		logger.Rows(len(table.Records)),
		slog.Int("columns", table.Header.Len()))

	em.Stage("validate", fmt.Sprintf("checking %d records against %d fields", len(table.Records), len(s.Fields)))
	result, err := engine.Validate(ctx, table)
	if err != nil {
		return fail("validate", err)
	}
	invalid := len(result.InvalidRows())
	em.Partition(len(result.Valid), invalid)

	var reportPath string
	if !result.AllValid() {
		em.Stage("report", "writing error report")
		reportPath = filepath.Join(opts.ReportDir, report.Filename(start))
		meta := report.Meta{
			GeneratedAt:  start,
			RunID:        opts.RunID,
			TotalRecords: result.TotalRecords,
		}
		if err := os.MkdirAll(opts.ReportDir, 0o755); err != nil {
			return fail("report", errors.Join(tabular.ErrWriteOutput, err))
		}
		if err := os.WriteFile(reportPath, []byte(report.Format(result.Failures, meta)), 0o644); err != nil {
			return fail("report", errors.Join(tabular.ErrWriteOutput, err))
		}
		em.ArtifactWritten(progress.ArtifactReport, reportPath)
		em.FieldSummary(report.Summary(result.Failures, s.FieldNames()))
	}

	if len(result.Valid) > 0 {
		em.Stage("export", "writing valid records")
		sink := tabular.NewCSVSink(opts.Output,
			tabular.WithEncoding(opts.Encoding),
			tabular.WithComma(opts.Delimiter))
		if err := sink.WriteAll(ctx, table.Header, result.Valid); err != nil {
			return fail("export", err)
		}
		em.ArtifactWritten(progress.ArtifactValidRecords, opts.Output)
	} else {
		em.NoValidRecords()
	}

	summary := map[string]any{
		"records":  result.TotalRecords,
		"valid":    len(result.Valid),
		"invalid":  invalid,
		"failures": len(result.Failures),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}
	if reportPath != "" {
		summary["report"] = reportPath
	}
	em.Complete(summary)
	log.DebugContext(ctx, "validation run complete",
		logger.Component("validate"),
		logger.Rows(result.TotalRecords),
		logger.Failures(len(result.Failures)),
		logger.Duration(time.Since(start)))
	return nil
}
