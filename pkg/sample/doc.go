// Package sample generates customer test data for the validation pipeline.
//
// A Generator is seeded, so runs are reproducible: the same seed yields the
// same table byte for byte. Record produces rows that pass the built-in
// customer schema; Defective produces rows that fail it in one specific,
// named way (Defect); Table mixes both at a configurable ratio, cycling
// through every defect class so a generated file exercises the whole error
// report.
//
// Usage:
//
//	g := sample.New(42)
//	table, err := g.Table(100, 0.2) // 100 rows, 20 defective
//	if err != nil {
//	    return err
//	}
//	sink := tabular.NewCSVSink("customers.csv")
//	err = sink.WriteAll(ctx, table.Header, table.Records)
package sample
