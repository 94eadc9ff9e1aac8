package validator

import (
	"regexp"

	"github.com/dmitrymomot/recordkit/pkg/cpf"
)

// emailRegex is anchored on both ends and insists on a dotted domain with
// an alphabetic top-level part of two or more letters, so values like
// "a@b" or "user@domain" do not pass.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail validates the full string against the email pattern. Empty and
// whitespace-only values fail; no trimming is applied, so stray spaces
// around an otherwise correct address also fail.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "email",
			Values: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCPF validates a Brazilian CPF number, accepting both formatted and
// bare-digit input. See the cpf package for the checksum rules.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return cpf.IsValid(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid CPF",
			Code:    "cpf",
			Values: map[string]any{
				"field": field,
			},
		},
	}
}
