package cpf

import (
	"math/rand"
	"strings"
)

// Clean strips every character that is not an ASCII digit, reducing
// formatted input like "111.444.777-35" to its bare digits.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// CheckDigit computes the verification digit for a partial CPF. The input
// must contain only ASCII digits; callers typically pass the first nine
// digits to obtain the tenth, then the first ten to obtain the eleventh.
//
// Digits are weighted from len+1 down to 2, summed, and reduced modulo 11.
// A remainder below 2 yields 0, anything else yields 11 minus the remainder.
func CheckDigit(digits string) int {
	weight := len(digits) + 1
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// IsValid reports whether s is a well-formed CPF with correct verification
// digits. Formatting characters are stripped first; anything that does not
// reduce to exactly 11 digits is invalid, as are the reserved numbers made
// of a single repeated digit.
func IsValid(s string) bool {
	d := Clean(s)
	if len(d) != 11 || repeated(d) {
		return false
	}
	if int(d[9]-'0') != CheckDigit(d[:9]) {
		return false
	}
	return int(d[10]-'0') == CheckDigit(d[:10])
}

// Format renders s in the canonical XXX.XXX.XXX-XX form. It reports false
// when the input does not reduce to exactly 11 digits. The verification
// digits are not checked; combine with IsValid where validity matters.
func Format(s string) (string, bool) {
	d := Clean(s)
	if len(d) != 11 {
		return "", false
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:], true
}

// Generate returns a random, formatted CPF with correct verification
// digits, suitable for sample and test data. Passing a seeded *rand.Rand
// makes the output reproducible; a nil rnd falls back to the shared
// math/rand source.
func Generate(rnd *rand.Rand) string {
	intn := rand.Intn
	if rnd != nil {
		intn = rnd.Intn
	}

	buf := make([]byte, 0, 11)
	for {
		buf = buf[:0]
		for i := 0; i < 9; i++ {
			buf = append(buf, byte('0'+intn(10)))
		}
		// Reserved repeated-digit numbers would fail IsValid.
		if repeated(string(buf)) {
			continue
		}
		buf = append(buf, byte('0'+CheckDigit(string(buf))))
		buf = append(buf, byte('0'+CheckDigit(string(buf))))
		formatted, _ := Format(string(buf))
		return formatted
	}
}

func repeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
