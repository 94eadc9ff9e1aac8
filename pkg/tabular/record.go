package tabular

// Record is one data row bound to its table's header. Cells are normalized
// to the header width at construction: short rows are padded with empty
// cells, long rows are truncated. Index is the zero-based position of the
// row among the data rows (the row right under the header has index 0).
type Record struct {
	index  int
	header *Header
	cells  []string
}

// NewRecord builds a Record, copying cells and normalizing them to the
// header width.
func NewRecord(index int, header *Header, cells []string) Record {
	normalized := make([]string, header.Len())
	copy(normalized, cells)
	return Record{index: index, header: header, cells: normalized}
}

// Index returns the zero-based data-row position.
func (r Record) Index() int {
	return r.index
}

// Field returns the cell under the named column. It reports false when the
// header has no such column.
func (r Record) Field(name string) (string, bool) {
	i, ok := r.header.Index(name)
	if !ok {
		return "", false
	}
	return r.cells[i], true
}

// Cells returns a copy of the row's cells in column order.
func (r Record) Cells() []string {
	out := make([]string, len(r.cells))
	copy(out, r.cells)
	return out
}
