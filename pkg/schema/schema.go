package schema

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// FieldType names the coercion applied to a cell before value checks run.
type FieldType string

const (
	// TypeString leaves the cell text untouched.
	TypeString FieldType = "string"
	// TypeInteger parses the cell as a base-10 whole number.
	TypeInteger FieldType = "integer"
	// TypeDecimal parses the cell as a decimal number, accepting a decimal
	// comma as produced by some locales.
	TypeDecimal FieldType = "decimal"
)

// Field declares how one column is validated: its expected type, whether
// empty cells are acceptable, and the value checks applied to non-empty
// cells.
type Field struct {
	Name     string    `yaml:"name"`
	Type     FieldType `yaml:"type"`
	Nullable bool      `yaml:"nullable,omitempty"`
	Checks   []Check   `yaml:"checks,omitempty"`
}

// Schema is an ordered set of field declarations. Order matters: failures
// are reported per field in declaration order, and summary ties break on
// it. When Strict is set, input columns not declared here make the whole
// run fail instead of being ignored.
//
// A Schema is immutable after Validate and safe for concurrent Evaluate
// calls.
type Schema struct {
	Fields []Field `yaml:"fields"`
	Strict bool    `yaml:"strict,omitempty"`
}

// FieldNames returns the declared field names in order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Validate checks the schema declaration itself: field names, types, and
// per-check parameter consistency. It does not look at any data.
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return errors.Join(ErrInvalidField, fmt.Errorf("field with empty name"))
		}
		if seen[name] {
			return errors.Join(ErrDuplicateField, fmt.Errorf("field %q", name))
		}
		seen[name] = true

		switch f.Type {
		case TypeString, TypeInteger, TypeDecimal:
		default:
			return errors.Join(ErrUnknownFieldType, fmt.Errorf("field %q has type %q", name, f.Type))
		}

		for _, c := range f.Checks {
			if err := validateCheck(f, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCheck(f Field, c Check) error {
	switch c.Kind {
	case CheckLengthRange:
		if f.Type != TypeString {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("length_range on non-string field %q", f.Name))
		}
		if c.Min == nil || c.Max == nil {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("length_range on field %q needs both min and max", f.Name))
		}
		if *c.Min != math.Trunc(*c.Min) || *c.Max != math.Trunc(*c.Max) {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("length_range bounds on field %q must be whole numbers", f.Name))
		}
		if *c.Min < 0 || *c.Min > *c.Max {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("length_range bounds on field %q are inconsistent", f.Name))
		}
	case CheckMinValue:
		if f.Type == TypeString {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("min_value on string field %q", f.Name))
		}
		if c.Min == nil {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("min_value on field %q needs min", f.Name))
		}
	case CheckMaxValue:
		if f.Type == TypeString {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("max_value on string field %q", f.Name))
		}
		if c.Max == nil {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("max_value on field %q needs max", f.Name))
		}
	case CheckEmail, CheckCPF:
		if f.Type != TypeString {
			return errors.Join(ErrInvalidCheck, fmt.Errorf("%s check on non-string field %q", c.Kind, f.Name))
		}
	default:
		return errors.Join(ErrUnknownCheckKind, fmt.Errorf("field %q declares check %q", f.Name, c.Kind))
	}
	return nil
}
