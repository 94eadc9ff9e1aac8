package schema

// Customers returns the built-in schema for customer exports: name (1-255
// characters), tax_id (a checksum-valid CPF), email, contract_value
// (non-negative decimal) and age (whole number between 1 and 150). The
// schema is non-strict, so extra columns in the input are ignored.
//
// Every call returns a fresh value; callers may adjust Strict or append
// fields without affecting other users.
func Customers() *Schema {
	return &Schema{
		Fields: []Field{
			{
				Name: "name",
				Type: TypeString,
				Checks: []Check{
					{Kind: CheckLengthRange, Min: bound(1), Max: bound(255)},
				},
			},
			{
				Name: "tax_id",
				Type: TypeString,
				Checks: []Check{
					{Kind: CheckCPF},
				},
			},
			{
				Name: "email",
				Type: TypeString,
				Checks: []Check{
					{Kind: CheckEmail},
				},
			},
			{
				Name: "contract_value",
				Type: TypeDecimal,
				Checks: []Check{
					{Kind: CheckMinValue, Min: bound(0), Label: "cannot be negative"},
				},
			},
			{
				Name: "age",
				Type: TypeInteger,
				Checks: []Check{
					{Kind: CheckMinValue, Min: bound(1)},
					{Kind: CheckMaxValue, Max: bound(150)},
				},
			},
		},
	}
}

func bound(v float64) *float64 {
	return &v
}
