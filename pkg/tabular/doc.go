// Package tabular models row-oriented datasets and moves them in and out of
// CSV files.
//
// A Table couples a Header (column names with O(1) lookup) with Records
// (data rows normalized to the header width). Sources and sinks are small
// interfaces so validation pipelines stay independent of the storage
// format; the package ships CSV implementations that handle legacy
// single-byte encodings (latin-1, windows-1252) and BOM-prefixed UTF-8, as
// produced by common spreadsheet tools.
//
// # Usage
//
//	import "github.com/dmitrymomot/recordkit/pkg/tabular"
//
//	src := tabular.NewCSVSource("customers.csv",
//		tabular.WithEncoding("latin-1"),
//		tabular.WithComma(';'),
//	)
//	table, err := src.ReadAll(ctx)
//	if err != nil {
//		return err
//	}
//
//	name, ok := table.Records[0].Field("name")
//
//	sink := tabular.NewCSVSink("customers_clean.csv")
//	err = sink.WriteAll(ctx, table.Header, table.Records)
package tabular
