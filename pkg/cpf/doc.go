// Package cpf implements checksum validation for Brazilian CPF numbers
// (Cadastro de Pessoas Físicas), the national taxpayer identifier.
//
// A CPF consists of nine base digits followed by two verification digits.
// Each verification digit is derived from the digits preceding it using a
// weighted sum reduced modulo 11: positions are weighted from high to low
// (the first position weighs len+1, the last weighs 2), and the digit is 0
// when the remainder is below 2, otherwise 11 minus the remainder. Numbers
// made of a single repeated digit satisfy the arithmetic but are reserved
// and therefore rejected.
//
// All entry points accept formatted input ("111.444.777-35") as well as
// bare digits ("11144477735"); any non-digit characters are stripped before
// validation.
//
// # Usage
//
//	import "github.com/dmitrymomot/recordkit/pkg/cpf"
//
//	cpf.IsValid("111.444.777-35") // true
//	cpf.IsValid("111.111.111-11") // false, repeated digits
//
//	formatted, ok := cpf.Format("11144477735")
//	// "111.444.777-35", true
package cpf
