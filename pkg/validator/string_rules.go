package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming
// whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
			Values: map[string]any{
				"field": field,
			},
		},
	}
}

// LenBetween validates that the string length falls within the inclusive
// [min, max] range. Length is measured in bytes, matching how the values
// arrive from tabular sources.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min && len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
			Code:    "length_range",
			Values: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
