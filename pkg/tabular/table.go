package tabular

import "context"

// Table is a fully loaded tabular dataset: one header and the data rows in
// file order.
type Table struct {
	Header  *Header
	Records []Record
}

// Source loads a complete table. Implementations own file handling and
// decoding; batch validation needs the whole dataset in memory anyway to
// produce exhaustive reports.
type Source interface {
	ReadAll(ctx context.Context) (*Table, error)
}

// Sink persists records under a header. Records must have been built
// against the same header (or one of equal width), since cells are written
// positionally.
type Sink interface {
	WriteAll(ctx context.Context, header *Header, records []Record) error
}
