package progress

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"

	"github.com/dmitrymomot/recordkit/pkg/report"
)

// CLIEmitter renders run milestones as colored terminal output.
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a terminal emitter. Verbosity 0 reports milestones
// only; 1 and above also prints Info messages and completion details.
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

// Stage prints a stage announcement.
func (e *CLIEmitter) Stage(stage string, message string) {
	pterm.Printf("%s %s\n", pterm.LightCyan(stage+":"), message)
}

// Info prints secondary detail when verbosity allows.
func (e *CLIEmitter) Info(message string) {
	if e.verbosity >= 1 {
		pterm.Info.Println(message)
	}
}

// Partition prints the valid/invalid split.
func (e *CLIEmitter) Partition(valid, invalid int) {
	pterm.Printf("Valid records:   %s\n", pterm.Green(fmt.Sprintf("%d", valid)))
	pterm.Printf("Invalid records: %s\n", pterm.Yellow(fmt.Sprintf("%d", invalid)))
}

// FieldSummary prints per-field failure counts, worst first.
func (e *CLIEmitter) FieldSummary(counts []report.FieldCount) {
	if len(counts) == 0 {
		return
	}
	pterm.Println("Failures by field:")
	for _, fc := range counts {
		pterm.Printf("  • %s: %s\n", fc.Field, pterm.Yellow(fmt.Sprintf("%d", fc.Count)))
	}
}

// ArtifactWritten prints the path of a persisted output file.
func (e *CLIEmitter) ArtifactWritten(kind ArtifactKind, path string) {
	switch kind {
	case ArtifactReport:
		pterm.Success.Printf("Error report written to %s\n", path)
	case ArtifactValidRecords:
		pterm.Success.Printf("Valid records written to %s\n", path)
	case ArtifactSample:
		pterm.Success.Printf("Sample export written to %s\n", path)
	default:
		pterm.Success.Printf("Output written to %s\n", path)
	}
}

// NoValidRecords prints the skipped-export notice.
func (e *CLIEmitter) NoValidRecords() {
	pterm.Warning.Println("No valid records found, skipping export")
}

// Complete prints the closing summary. Details appear at verbosity 1 and
// above, sorted by key so runs are comparable.
func (e *CLIEmitter) Complete(summary map[string]any) {
	pterm.Success.Println("Validation complete")
	if e.verbosity >= 1 {
		keys := make([]string, 0, len(summary))
		for k := range summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pterm.Printf("  %s: %v\n", pterm.Gray(k), summary[k])
		}
	}
}

// Fail prints a fatal error.
func (e *CLIEmitter) Fail(stage string, err error) {
	pterm.Error.Printf("Error in %s: %v\n", stage, err)
}
