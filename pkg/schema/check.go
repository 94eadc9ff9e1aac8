package schema

import "github.com/dmitrymomot/recordkit/pkg/validator"

// CheckKind names a value check applied to non-empty cells.
type CheckKind string

const (
	// CheckLengthRange bounds the byte length of a string field (inclusive).
	CheckLengthRange CheckKind = "length_range"
	// CheckMinValue bounds a numeric field from below (inclusive).
	CheckMinValue CheckKind = "min_value"
	// CheckMaxValue bounds a numeric field from above (inclusive).
	CheckMaxValue CheckKind = "max_value"
	// CheckEmail requires the cell to be a well-formed email address.
	CheckEmail CheckKind = "email"
	// CheckCPF requires the cell to be a CPF with valid verification digits.
	CheckCPF CheckKind = "cpf"
)

// Check is one declarative value check. Min and Max carry the bounds for
// the range kinds; Label, when set, replaces the built-in failure message.
type Check struct {
	Kind  CheckKind `yaml:"kind"`
	Min   *float64  `yaml:"min,omitempty"`
	Max   *float64  `yaml:"max,omitempty"`
	Label string    `yaml:"label,omitempty"`
}

// rule builds the validator rule for this check against a concrete cell.
// raw is the cell text, num the coerced numeric value for numeric fields.
// It reports false for checks whose parameters are absent, which cannot
// happen on a schema that passed Validate.
func (c Check) rule(f Field, raw string, num float64) (validator.Rule, bool) {
	switch c.Kind {
	case CheckLengthRange:
		if c.Min == nil || c.Max == nil {
			return validator.Rule{}, false
		}
		return validator.LenBetween(f.Name, raw, int(*c.Min), int(*c.Max)), true
	case CheckMinValue:
		if c.Min == nil {
			return validator.Rule{}, false
		}
		return validator.MinNum(f.Name, num, *c.Min), true
	case CheckMaxValue:
		if c.Max == nil {
			return validator.Rule{}, false
		}
		return validator.MaxNum(f.Name, num, *c.Max), true
	case CheckEmail:
		return validator.ValidEmail(f.Name, raw), true
	case CheckCPF:
		return validator.ValidCPF(f.Name, raw), true
	}
	return validator.Rule{}, false
}
