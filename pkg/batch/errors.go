package batch

import "errors"

// Package-specific errors
var (
	// ErrNoSchema is returned when the engine is constructed without a schema.
	ErrNoSchema = errors.New("no schema provided")

	// ErrInvalidSchema is returned when the schema declaration itself does not validate.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrNoTable is returned when Validate is called without a loaded table.
	ErrNoTable = errors.New("no input table")

	// ErrMissingColumn is returned when the input header lacks a column the schema declares.
	// This is a run-level failure: without the column no record can be evaluated meaningfully.
	ErrMissingColumn = errors.New("input is missing a required column")

	// ErrUnknownColumn is returned in strict mode for input columns the schema does not declare.
	ErrUnknownColumn = errors.New("input has an undeclared column")

	// ErrCancelled is returned when the context is cancelled mid-run.
	ErrCancelled = errors.New("validation cancelled")
)
