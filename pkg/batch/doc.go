// Package batch validates tabular datasets against a schema and partitions
// them into valid records and failures.
//
// The engine is exhaustive on two axes: every record is evaluated even
// when earlier ones fail, and every field of every record is evaluated
// even when earlier fields fail. Record-level problems become
// schema.Failure values; the error return is reserved for conditions that
// doom the whole run, such as a required column missing from the input
// header, an undeclared column in strict mode, or cancellation.
//
// Evaluation can fan out over several goroutines with WithWorkers. Output
// is deterministic either way: valid records and failures keep input
// order, so a report produced from the result is byte-for-byte identical
// for any worker count.
//
//	eng, err := batch.New(schema.Customers(), batch.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	result, err := eng.Validate(ctx, table)
package batch
