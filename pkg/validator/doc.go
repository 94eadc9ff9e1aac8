// Package validator provides a rule-based validation engine that collects
// every failure instead of stopping at the first one.
//
// A Rule pairs a boolean predicate with the ValidationError reported when
// the predicate fails. Apply evaluates an arbitrary set of rules and
// returns the accumulated failures as ValidationErrors (which implements
// error), or nil when everything passes. Exhaustive evaluation is the
// point: batch pipelines need the complete list of problems per record,
// not just the first.
//
// Each ValidationError carries the failed field, a human-readable message,
// and a stable machine code with the rule parameters, so downstream
// consumers (reports, JSON output) can work with failures without parsing
// message text.
//
// # Usage
//
//	import "github.com/dmitrymomot/recordkit/pkg/validator"
//
//	err := validator.Apply(
//		validator.RequiredString("name", name),
//		validator.LenBetween("name", name, 1, 255),
//		validator.ValidEmail("email", email),
//		validator.ValidCPF("cpf", cpfNumber),
//		validator.MinNum("age", age, 1),
//		validator.MaxNum("age", age, 150),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		for _, e := range errs {
//			fmt.Printf("%s: %s\n", e.Field, e.Message)
//		}
//	}
package validator
