package tabular

import "errors"

// Package-specific errors
var (
	// ErrReadInput is returned when the input file cannot be opened or parsed.
	ErrReadInput = errors.New("failed to read tabular input")

	// ErrEmptyInput is returned when the input contains no header row.
	ErrEmptyInput = errors.New("input has no header row")

	// ErrDuplicateColumn is returned when a header names the same column twice.
	ErrDuplicateColumn = errors.New("duplicate column in header")

	// ErrUnsupportedEncoding is returned for encoding names this package cannot decode.
	ErrUnsupportedEncoding = errors.New("unsupported character encoding")

	// ErrWriteOutput is returned when the output file cannot be created or written.
	ErrWriteOutput = errors.New("failed to write tabular output")

	// ErrReadCancelled is returned when the context is cancelled while reading.
	ErrReadCancelled = errors.New("reading input cancelled")

	// ErrWriteCancelled is returned when the context is cancelled while writing.
	ErrWriteCancelled = errors.New("writing output cancelled")
)
