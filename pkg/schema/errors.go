package schema

import "errors"

// Package-specific errors
var (
	// ErrNoFields is returned when a schema declares no fields at all.
	ErrNoFields = errors.New("schema has no fields")

	// ErrInvalidField is returned for a field with an empty name.
	ErrInvalidField = errors.New("invalid field declaration")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field in schema")

	// ErrUnknownFieldType is returned for a type other than string, integer or decimal.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrUnknownCheckKind is returned for a check kind this package does not implement.
	ErrUnknownCheckKind = errors.New("unknown check kind")

	// ErrInvalidCheck is returned when a check is declared with missing or
	// inconsistent parameters, or attached to a field of the wrong type.
	ErrInvalidCheck = errors.New("invalid check declaration")

	// ErrReadSchema is returned when a schema file cannot be read.
	ErrReadSchema = errors.New("failed to read schema file")

	// ErrParseSchema is returned when schema YAML cannot be parsed.
	ErrParseSchema = errors.New("failed to parse schema")
)
