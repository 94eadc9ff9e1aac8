package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/tabular"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Failure is one rule violation found in one record. Row is the record's
// zero-based data-row index; Value echoes the offending cell text so
// reports never depend on how the value was parsed. HasValue is false when
// the cell was empty or the column absent.
type Failure struct {
	Row      int
	Field    string
	Message  string
	Code     string
	Value    string
	HasValue bool
}

// Evaluate runs every declared field against the record and returns all
// failures, never stopping early. Per field the order is: presence, then
// type coercion, then value checks. An empty cell yields at most one
// failure (required) and no value checks; a cell that fails coercion
// yields exactly one failure and no value checks; otherwise every check
// failure is collected.
//
// An empty result means the record is valid.
func (s *Schema) Evaluate(rec tabular.Record) []Failure {
	var failures []Failure
	for _, f := range s.Fields {
		failures = append(failures, s.evaluateField(rec, f)...)
	}
	return failures
}

func (s *Schema) evaluateField(rec tabular.Record, f Field) []Failure {
	row := rec.Index()

	raw, ok := rec.Field(f.Name)
	if !ok {
		// Sources normalize records to their header, so this only fires for
		// records built against a foreign header.
		return []Failure{{
			Row:     row,
			Field:   f.Name,
			Message: "column is missing",
			Code:    "missing_column",
		}}
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if f.Nullable {
			return nil
		}
		e := validator.RequiredString(f.Name, raw).Error
		return []Failure{{
			Row:     row,
			Field:   f.Name,
			Message: e.Message,
			Code:    e.Code,
			Value:   raw,
		}}
	}

	var num float64
	switch f.Type {
	case TypeInteger:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return []Failure{{
				Row:      row,
				Field:    f.Name,
				Message:  "must be a whole number",
				Code:     "integer",
				Value:    raw,
				HasValue: true,
			}}
		}
		num = float64(n)
	case TypeDecimal:
		v, err := parseDecimal(trimmed)
		if err != nil {
			return []Failure{{
				Row:      row,
				Field:    f.Name,
				Message:  "must be a decimal number",
				Code:     "decimal",
				Value:    raw,
				HasValue: true,
			}}
		}
		num = v
	}

	rules := make([]validator.Rule, 0, len(f.Checks))
	for _, c := range f.Checks {
		rule, ok := c.rule(f, raw, num)
		if !ok {
			continue
		}
		if c.Label != "" {
			rule.Error.Message = c.Label
		}
		rules = append(rules, rule)
	}

	err := validator.Apply(rules...)
	if err == nil {
		return nil
	}

	errs := validator.ExtractValidationErrors(err)
	failures := make([]Failure, 0, len(errs))
	for _, ve := range errs {
		failures = append(failures, Failure{
			Row:      row,
			Field:    f.Name,
			Message:  ve.Message,
			Code:     ve.Code,
			Value:    raw,
			HasValue: true,
		})
	}
	return failures
}

// parseDecimal accepts the plain float syntax plus a single decimal comma
// ("1234,56"). Thousands separators are not supported, and NaN/Inf are
// rejected: they parse as floats but are never usable amounts.
func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			return parseDecimal(strings.Replace(s, ",", ".", 1))
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
