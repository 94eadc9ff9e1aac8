package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

const customersYAML = `
fields:
  - name: name
    type: string
    checks:
      - kind: length_range
        min: 1
        max: 255
  - name: tax_id
    type: string
    checks:
      - kind: cpf
  - name: email
    type: string
    checks:
      - kind: email
  - name: contract_value
    type: decimal
    checks:
      - kind: min_value
        min: 0
        label: cannot be negative
  - name: age
    type: integer
    checks:
      - kind: min_value
        min: 1
      - kind: max_value
        max: 150
strict: false
`

func TestParse(t *testing.T) {
	t.Run("parses a full schema document", func(t *testing.T) {
		s, err := schema.Parse([]byte(customersYAML))
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "tax_id", "email", "contract_value", "age"}, s.FieldNames())
		assert.False(t, s.Strict)
		assert.Equal(t, schema.TypeDecimal, s.Fields[3].Type)
		assert.Equal(t, "cannot be negative", s.Fields[3].Checks[0].Label)
	})

	t.Run("parsed schema behaves like the built-in one", func(t *testing.T) {
		s, err := schema.Parse([]byte(customersYAML))
		require.NoError(t, err)

		h, err := tabular.NewHeader([]string{"name", "tax_id", "email", "contract_value", "age"})
		require.NoError(t, err)
		rec := tabular.NewRecord(0, h, []string{"John", "111.444.777-35", "a@b", "-1", "30"})

		failures := s.Evaluate(rec)
		require.Len(t, failures, 2)
		assert.Equal(t, "must be a valid email address", failures[0].Message)
		assert.Equal(t, "cannot be negative", failures[1].Message)
	})

	t.Run("reads the strict flag", func(t *testing.T) {
		s, err := schema.Parse([]byte("fields:\n  - name: a\n    type: string\nstrict: true\n"))
		require.NoError(t, err)
		assert.True(t, s.Strict)
	})

	t.Run("fails with ErrParseSchema for malformed YAML", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields: ["))
		assert.ErrorIs(t, err, schema.ErrParseSchema)
	})

	t.Run("fails validation for unknown kinds", func(t *testing.T) {
		doc := "fields:\n  - name: a\n    type: string\n    checks:\n      - kind: regex\n"
		_, err := schema.Parse([]byte(doc))
		assert.ErrorIs(t, err, schema.ErrUnknownCheckKind)
	})

	t.Run("fails validation for an empty document", func(t *testing.T) {
		_, err := schema.Parse([]byte(""))
		assert.ErrorIs(t, err, schema.ErrNoFields)
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads a schema file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.yaml")
		require.NoError(t, os.WriteFile(path, []byte(customersYAML), 0o644))

		s, err := schema.Load(path)
		require.NoError(t, err)
		assert.Len(t, s.Fields, 5)
	})

	t.Run("fails with ErrReadSchema for a missing file", func(t *testing.T) {
		_, err := schema.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, schema.ErrReadSchema)
	})
}
