// Package schema declares per-field validation plans for tabular records
// and evaluates them exhaustively.
//
// A Schema lists fields in order; each Field names a column, a coercion
// type (string, integer, decimal) and a set of declarative checks
// (length_range, min_value, max_value, email, cpf). Evaluation of a record
// proceeds per field through presence, coercion and value checks, and
// collects every failure instead of stopping at the first: data-cleaning
// runs need the full picture per record.
//
// Empty cells are a presence concern only. A non-nullable field with an
// empty cell reports a single required failure and skips its checks; a
// nullable field with an empty cell reports nothing. Cells that cannot be
// coerced report a single type failure. A failure is always a record-level
// fact, never an error return.
//
// Schemas can be declared in code (see Customers, the built-in customer
// export schema) or loaded from YAML with Load/Parse. Validate vets the
// declaration itself; Evaluate assumes a validated schema.
package schema
