package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// DefaultTitle heads reports whose Meta does not override it.
const DefaultTitle = "VALIDATION ERROR REPORT"

const (
	timeLayout     = "02/01/2006 15:04:05"
	filenameLayout = "20060102_150405"
	lineWidth      = 80
)

// Meta carries the report header data. GeneratedAt is caller-supplied so
// the same failures and meta always render to the same bytes; RunID and
// TotalRecords lines are omitted when unset.
type Meta struct {
	Title        string
	GeneratedAt  time.Time
	RunID        string
	TotalRecords int
}

// Format renders failures into the plain-text report: a banner header,
// one section per failed row labelled with its spreadsheet row number
// (data index + 2, counting the header line and 1-based rows), and a
// footer. Failures are grouped by row in ascending order; within a row
// their input order is preserved. The Value line is omitted for failures
// without a value, such as empty required cells.
func Format(failures []schema.Failure, meta Meta) string {
	banner := strings.Repeat("=", lineWidth)
	rule := strings.Repeat("─", lineWidth)

	title := meta.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString(title + "\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", meta.GeneratedAt.Format(timeLayout))
	if meta.RunID != "" {
		fmt.Fprintf(&b, "Run ID: %s\n", meta.RunID)
	}
	if meta.TotalRecords > 0 {
		fmt.Fprintf(&b, "Records checked: %d\n", meta.TotalRecords)
	}
	fmt.Fprintf(&b, "Total failures: %d\n", len(failures))
	b.WriteString(banner + "\n\n")

	sorted := make([]schema.Failure, len(failures))
	copy(sorted, failures)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Row < sorted[j].Row
	})

	lastRow := -1
	for i, f := range sorted {
		if i == 0 || f.Row != lastRow {
			fmt.Fprintf(&b, "\n%s\nROW %d\n%s\n", rule, f.Row+2, rule)
			lastRow = f.Row
		}
		fmt.Fprintf(&b, "\n  Field: %s\n", f.Field)
		fmt.Fprintf(&b, "  Error: %s\n", f.Message)
		if f.HasValue {
			fmt.Fprintf(&b, "  Value: %s\n", f.Value)
		}
	}

	b.WriteString("\n" + banner + "\n")
	b.WriteString("END OF REPORT\n")
	b.WriteString(banner + "\n")
	return b.String()
}

// Filename returns the conventional report file name for a run started at
// t, e.g. "validation_errors_20240315_143045.txt".
func Filename(t time.Time) string {
	return "validation_errors_" + t.Format(filenameLayout) + ".txt"
}
