package batch

import (
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

// Result is the outcome of validating one table. Valid holds the records
// with no failures, in input order; Failures holds every failure of every
// other record, grouped by record in input order. A record is in exactly
// one of the two: len(Valid) plus the number of distinct failure rows
// always equals TotalRecords.
type Result struct {
	Valid        []tabular.Record
	Failures     []schema.Failure
	TotalRecords int
}

// AllValid reports whether every record passed.
func (r *Result) AllValid() bool {
	return len(r.Failures) == 0
}

// InvalidRows returns the distinct row indexes that failed, ascending.
func (r *Result) InvalidRows() []int {
	var rows []int
	for _, f := range r.Failures {
		if len(rows) == 0 || rows[len(rows)-1] != f.Row {
			rows = append(rows, f.Row)
		}
	}
	return rows
}
