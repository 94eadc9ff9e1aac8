// Package report renders validation failures into deterministic text
// artifacts.
//
// Format produces the human-readable error report: failures grouped per
// failed row, each row labelled with its spreadsheet position so a person
// can open the source file and jump straight to the problem. The caller
// supplies the timestamp (and optional run ID) through Meta, which makes
// the output a pure function of its inputs: same failures, same meta,
// same bytes.
//
// Summary condenses the same failures into per-field counts for terminal
// display, ordered by count with schema declaration order as the
// tie-break.
package report
