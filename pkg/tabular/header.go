package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// Header holds the column names of a table in declaration order and offers
// O(1) name lookup. Column names are trimmed of surrounding whitespace;
// empty names are tolerated (they simply never match), but duplicates among
// the non-empty names are rejected because lookups would become ambiguous.
type Header struct {
	columns []string
	index   map[string]int
}

// NewHeader builds a Header from raw column names.
func NewHeader(columns []string) (*Header, error) {
	cols := make([]string, len(columns))
	idx := make(map[string]int, len(columns))
	for i, raw := range columns {
		name := strings.TrimSpace(raw)
		cols[i] = name
		if name == "" {
			continue
		}
		if _, exists := idx[name]; exists {
			return nil, errors.Join(ErrDuplicateColumn, fmt.Errorf("column %q", name))
		}
		idx[name] = i
	}
	return &Header{columns: cols, index: idx}, nil
}

// Columns returns a copy of the column names in declaration order.
func (h *Header) Columns() []string {
	out := make([]string, len(h.columns))
	copy(out, h.columns)
	return out
}

// Index returns the position of a named column.
func (h *Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

// Has reports whether the header contains a column with the given name.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Len returns the number of columns.
func (h *Header) Len() int {
	return len(h.columns)
}
