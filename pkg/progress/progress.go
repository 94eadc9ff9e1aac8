package progress

import "github.com/dmitrymomot/recordkit/pkg/report"

// ArtifactKind names an output file a run produces.
type ArtifactKind string

const (
	// ArtifactValidRecords is the re-exported CSV of records that passed.
	ArtifactValidRecords ArtifactKind = "valid_records"
	// ArtifactReport is the plain-text error report.
	ArtifactReport ArtifactKind = "report"
	// ArtifactSample is a generated sample export.
	ArtifactSample ArtifactKind = "sample"
)

// Emitter receives run milestones from the CLI pipeline. Implementations
// decide how to surface them: CLIEmitter renders for humans, JSONEmitter
// for machines, NopEmitter for callers that want silence. Methods must be
// safe to call in any order; emitters hold no run state.
type Emitter interface {
	// Stage announces that a named pipeline stage began.
	Stage(stage, message string)

	// Info carries secondary detail; human emitters may gate it behind
	// verbosity.
	Info(message string)

	// Partition reports the valid/invalid split after validation.
	Partition(valid, invalid int)

	// FieldSummary reports per-field failure counts, ordered worst-first.
	FieldSummary(counts []report.FieldCount)

	// ArtifactWritten reports an output file that was persisted.
	ArtifactWritten(kind ArtifactKind, path string)

	// NoValidRecords reports that the valid-records artifact was skipped
	// because nothing passed.
	NoValidRecords()

	// Complete marks a successful run.
	Complete(summary map[string]any)

	// Fail marks a fatal, run-aborting error in the named stage.
	Fail(stage string, err error)
}
