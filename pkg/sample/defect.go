package sample

// Defect names one way a generated row can fail validation.
type Defect string

const (
	// DefectBadChecksum breaks the CPF's second verification digit.
	DefectBadChecksum Defect = "bad_checksum"
	// DefectRepeatedDigits uses a reserved all-same-digit CPF.
	DefectRepeatedDigits Defect = "repeated_digits"
	// DefectBadEmail uses an address the email pattern rejects.
	DefectBadEmail Defect = "bad_email"
	// DefectEmptyName leaves the required name cell empty.
	DefectEmptyName Defect = "empty_name"
	// DefectNegativeValue makes the contract value negative.
	DefectNegativeValue Defect = "negative_value"
	// DefectAgeZero sets age below the minimum of 1.
	DefectAgeZero Defect = "age_zero"
	// DefectAgeTooHigh sets age above the maximum of 150.
	DefectAgeTooHigh Defect = "age_too_high"
	// DefectAgeNotNumeric puts text where a whole number is expected.
	DefectAgeNotNumeric Defect = "age_not_numeric"
)

// Defects returns every defect class in declaration order, the order
// Table cycles through.
func Defects() []Defect {
	return []Defect{
		DefectBadChecksum,
		DefectRepeatedDigits,
		DefectBadEmail,
		DefectEmptyName,
		DefectNegativeValue,
		DefectAgeZero,
		DefectAgeTooHigh,
		DefectAgeNotNumeric,
	}
}

// Field returns the schema field a defect lands on.
func (d Defect) Field() string {
	switch d {
	case DefectBadChecksum, DefectRepeatedDigits:
		return "tax_id"
	case DefectBadEmail:
		return "email"
	case DefectEmptyName:
		return "name"
	case DefectNegativeValue:
		return "contract_value"
	case DefectAgeZero, DefectAgeTooHigh, DefectAgeNotNumeric:
		return "age"
	}
	return ""
}
