package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("passes for well-formed addresses", func(t *testing.T) {
		for _, email := range []string{
			"a@b.com",
			"user@example.com",
			"first.last@example.com",
			"user+tag@example.co",
			"user_name%x@sub.example.org",
			"USER@EXAMPLE.COM",
			"1234@example.io",
		} {
			rule := validator.ValidEmail("email", email)
			assert.True(t, rule.Check(), "expected %q to be valid", email)
		}
	})

	t.Run("fails without a dotted domain", func(t *testing.T) {
		rule := validator.ValidEmail("email", "a@b")
		assert.False(t, rule.Check())
	})

	t.Run("fails for empty and whitespace values", func(t *testing.T) {
		assert.False(t, validator.ValidEmail("email", "").Check())
		assert.False(t, validator.ValidEmail("email", "   ").Check())
	})

	t.Run("fails for malformed addresses", func(t *testing.T) {
		for _, email := range []string{
			"@example.com",
			"user@",
			"user@@example.com",
			"user example@example.com",
			"user@example.c",
			"user@example.123",
			"plainaddress",
			" user@example.com",
			"user@example.com ",
		} {
			rule := validator.ValidEmail("email", email)
			assert.False(t, rule.Check(), "expected %q to be invalid", email)
		}
	})

	t.Run("reports the email error", func(t *testing.T) {
		rule := validator.ValidEmail("email", "a@b")
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "must be a valid email address", rule.Error.Message)
		assert.Equal(t, "email", rule.Error.Code)
	})
}

func TestValidCPF(t *testing.T) {
	t.Run("passes for valid formatted number", func(t *testing.T) {
		rule := validator.ValidCPF("cpf", "111.444.777-35")
		assert.True(t, rule.Check())
	})

	t.Run("passes for valid bare digits", func(t *testing.T) {
		rule := validator.ValidCPF("cpf", "11144477735")
		assert.True(t, rule.Check())
	})

	t.Run("fails for wrong verification digits", func(t *testing.T) {
		rule := validator.ValidCPF("cpf", "111.444.777-36")
		assert.False(t, rule.Check())
	})

	t.Run("fails for repeated digits", func(t *testing.T) {
		rule := validator.ValidCPF("cpf", "111.111.111-11")
		assert.False(t, rule.Check())
	})

	t.Run("fails for empty value", func(t *testing.T) {
		rule := validator.ValidCPF("cpf", "")
		assert.False(t, rule.Check())
	})

	t.Run("reports the cpf error", func(t *testing.T) {
		rule := validator.ValidCPF("cpf", "123")
		assert.Equal(t, "cpf", rule.Error.Field)
		assert.Equal(t, "must be a valid CPF", rule.Error.Message)
		assert.Equal(t, "cpf", rule.Error.Code)
	})
}
