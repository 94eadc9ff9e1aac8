// Package progress reports validation-run milestones to the user.
//
// The pipeline talks to a single Emitter interface; three implementations
// cover the usual consumers:
//
//   - CLIEmitter renders colored terminal output via pterm, gating detail
//     behind a verbosity level.
//   - JSONEmitter writes one JSON event per line for scripts and other
//     programs driving recordkit.
//   - NopEmitter discards everything.
//
// Events follow the run's shape: stages begin, the partition and per-field
// summary arrive after validation, artifacts get written (or the
// no-valid-records notice fires), and the run either completes or fails.
//
// Usage:
//
//	var em progress.Emitter = progress.NewCLIEmitter(verbosity)
//	if jsonOutput {
//	    em = progress.NewJSONEmitter(os.Stdout)
//	}
//
//	em.Stage("read", "loading customers.csv")
//	...
//	em.Partition(len(result.Valid), len(result.InvalidRows()))
//	em.Complete(map[string]any{"records": result.TotalRecords})
package progress
