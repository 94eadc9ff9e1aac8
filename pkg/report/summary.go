package report

import (
	"sort"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// FieldCount is one summary line: a field and how many failures it
// accumulated across the batch.
type FieldCount struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// Summary aggregates failures per field, ordered by count descending.
// Ties break on the field's position in fieldOrder (the schema's
// declaration order); fields absent from fieldOrder sort after the
// declared ones, in first-seen order. Fields without failures are not
// listed.
func Summary(failures []schema.Failure, fieldOrder []string) []FieldCount {
	if len(failures) == 0 {
		return nil
	}

	counts := make(map[string]int, len(fieldOrder))
	var seen []string
	for _, f := range failures {
		if _, ok := counts[f.Field]; !ok {
			seen = append(seen, f.Field)
		}
		counts[f.Field]++
	}

	position := make(map[string]int, len(fieldOrder))
	for i, name := range fieldOrder {
		position[name] = i
	}
	rank := func(field string) int {
		if i, ok := position[field]; ok {
			return i
		}
		// Undeclared fields keep first-seen order after the declared ones.
		for i, name := range seen {
			if name == field {
				return len(fieldOrder) + i
			}
		}
		return len(fieldOrder) + len(seen)
	}

	out := make([]FieldCount, 0, len(seen))
	for _, field := range seen {
		out = append(out, FieldCount{Field: field, Count: counts[field]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return rank(out[i].Field) < rank(out[j].Field)
	})
	return out
}
