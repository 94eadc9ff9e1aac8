package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/batch"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

var customerColumns = []string{"name", "tax_id", "email", "contract_value", "age"}

func makeTable(t *testing.T, columns []string, rows ...[]string) *tabular.Table {
	t.Helper()
	h, err := tabular.NewHeader(columns)
	require.NoError(t, err)
	records := make([]tabular.Record, len(rows))
	for i, row := range rows {
		records[i] = tabular.NewRecord(i, h, row)
	}
	return &tabular.Table{Header: h, Records: records}
}

func validRow(name string) []string {
	return []string{name, "111.444.777-35", "john@example.com", "1500.50", "30"}
}

func TestNew(t *testing.T) {
	t.Run("accepts a valid schema", func(t *testing.T) {
		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)
		assert.NotNil(t, eng)
	})

	t.Run("rejects a nil schema", func(t *testing.T) {
		_, err := batch.New(nil)
		assert.ErrorIs(t, err, batch.ErrNoSchema)
	})

	t.Run("rejects an invalid schema declaration", func(t *testing.T) {
		_, err := batch.New(&schema.Schema{})
		assert.ErrorIs(t, err, batch.ErrInvalidSchema)
		assert.ErrorIs(t, err, schema.ErrNoFields)
	})
}

func TestValidatePartition(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps valid records and collects failures", func(t *testing.T) {
		table := makeTable(t, customerColumns,
			validRow("John"),
			[]string{"Jane", "111.444.777-35", "not-an-email", "100", "25"},
			validRow("Jim"),
		)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)

		require.Len(t, result.Valid, 2)
		name0, _ := result.Valid[0].Field("name")
		name1, _ := result.Valid[1].Field("name")
		assert.Equal(t, "John", name0)
		assert.Equal(t, "Jim", name1)

		require.Len(t, result.Failures, 1)
		assert.Equal(t, 1, result.Failures[0].Row)
		assert.Equal(t, "email", result.Failures[0].Field)

		assert.Equal(t, 3, result.TotalRecords)
		assert.False(t, result.AllValid())
		assert.Equal(t, []int{1}, result.InvalidRows())
	})

	t.Run("reports all-valid for a clean table", func(t *testing.T) {
		table := makeTable(t, customerColumns, validRow("John"), validRow("Jane"))

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.True(t, result.AllValid())
		assert.Len(t, result.Valid, 2)
		assert.Empty(t, result.InvalidRows())
	})

	t.Run("handles a table where every record fails", func(t *testing.T) {
		table := makeTable(t, customerColumns,
			[]string{"", "111.444.777-35", "a@b.com", "100", "30"},
			[]string{"John", "111.111.111-11", "a@b.com", "100", "30"},
		)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.Empty(t, result.Valid)
		assert.Equal(t, []int{0, 1}, result.InvalidRows())
	})

	t.Run("handles an empty table", func(t *testing.T) {
		table := makeTable(t, customerColumns)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.True(t, result.AllValid())
		assert.Empty(t, result.Valid)
		assert.Equal(t, 0, result.TotalRecords)
	})

	t.Run("every record lands on exactly one side", func(t *testing.T) {
		rows := make([][]string, 0, 20)
		for i := 0; i < 20; i++ {
			if i%3 == 0 {
				rows = append(rows, []string{"Bad", "111.111.111-11", "a@b", "-1", "200"})
			} else {
				rows = append(rows, validRow(fmt.Sprintf("Customer %d", i)))
			}
		}
		table := makeTable(t, customerColumns, rows...)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, result.TotalRecords, len(result.Valid)+len(result.InvalidRows()))
	})

	t.Run("groups failures by record in input order", func(t *testing.T) {
		table := makeTable(t, customerColumns,
			[]string{"John", "111.111.111-11", "a@b", "100", "30"},
			validRow("Jane"),
			[]string{"Jim", "111.444.777-35", "jim@example.com", "-5", "0"},
		)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)

		require.Len(t, result.Failures, 4)
		assert.Equal(t, []int{0, 2}, result.InvalidRows())
		assert.Equal(t, "tax_id", result.Failures[0].Field)
		assert.Equal(t, "email", result.Failures[1].Field)
		assert.Equal(t, "contract_value", result.Failures[2].Field)
		assert.Equal(t, "age", result.Failures[3].Field)
	})

	t.Run("is idempotent", func(t *testing.T) {
		table := makeTable(t, customerColumns,
			validRow("John"),
			[]string{"Jane", "111.444.777-35", "a@b", "100", "25"},
		)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		first, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		second, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("re-validating the valid partition finds no failures", func(t *testing.T) {
		table := makeTable(t, customerColumns,
			validRow("John"),
			[]string{"Jane", "111.444.777-35", "a@b", "100", "25"},
			validRow("Jim"),
		)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		first, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		require.NotEmpty(t, first.Valid)

		second, err := eng.Validate(ctx, &tabular.Table{Header: table.Header, Records: first.Valid})
		require.NoError(t, err)
		assert.True(t, second.AllValid())
		assert.Len(t, second.Valid, len(first.Valid))
	})
}

func TestValidatePreflight(t *testing.T) {
	ctx := context.Background()

	t.Run("fails when a schema column is missing from the header", func(t *testing.T) {
		table := makeTable(t, []string{"name", "email"}, []string{"John", "j@x.com"})

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		_, err = eng.Validate(ctx, table)
		assert.ErrorIs(t, err, batch.ErrMissingColumn)
	})

	t.Run("ignores extra columns by default", func(t *testing.T) {
		columns := append(append([]string{}, customerColumns...), "notes")
		table := makeTable(t, columns,
			append(validRow("John"), "a note"),
		)

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.True(t, result.AllValid())
	})

	t.Run("rejects extra columns in strict mode", func(t *testing.T) {
		columns := append(append([]string{}, customerColumns...), "notes")
		table := makeTable(t, columns, append(validRow("John"), "a note"))

		s := schema.Customers()
		s.Strict = true
		eng, err := batch.New(s)
		require.NoError(t, err)

		_, err = eng.Validate(ctx, table)
		assert.ErrorIs(t, err, batch.ErrUnknownColumn)
	})

	t.Run("rejects a nil table", func(t *testing.T) {
		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		_, err = eng.Validate(ctx, nil)
		assert.ErrorIs(t, err, batch.ErrNoTable)
	})
}

func TestValidateParallel(t *testing.T) {
	ctx := context.Background()

	buildMixedTable := func(t *testing.T, n int) *tabular.Table {
		t.Helper()
		rows := make([][]string, 0, n)
		for i := 0; i < n; i++ {
			switch i % 4 {
			case 0:
				rows = append(rows, []string{fmt.Sprintf("Bad %d", i), "111.111.111-11", "a@b", "100", "30"})
			case 1:
				rows = append(rows, []string{fmt.Sprintf("Customer %d", i), "111.444.777-35", "c@example.com", "-1", "151"})
			default:
				rows = append(rows, validRow(fmt.Sprintf("Customer %d", i)))
			}
		}
		return makeTable(t, customerColumns, rows...)
	}

	t.Run("produces identical results for any worker count", func(t *testing.T) {
		table := buildMixedTable(t, 103)

		sequential, err := batch.New(schema.Customers())
		require.NoError(t, err)
		baseline, err := sequential.Validate(ctx, table)
		require.NoError(t, err)

		for _, workers := range []int{2, 4, 8, 200} {
			parallel, err := batch.New(schema.Customers(), batch.WithWorkers(workers))
			require.NoError(t, err)

			got, err := parallel.Validate(ctx, table)
			require.NoError(t, err)
			assert.Equal(t, baseline.Failures, got.Failures, "workers=%d", workers)
			assert.Equal(t, baseline.Valid, got.Valid, "workers=%d", workers)
		}
	})

	t.Run("ignores worker counts below one", func(t *testing.T) {
		table := buildMixedTable(t, 10)

		eng, err := batch.New(schema.Customers(), batch.WithWorkers(0))
		require.NoError(t, err)

		result, err := eng.Validate(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, 10, result.TotalRecords)
	})
}

func TestValidateCancellation(t *testing.T) {
	t.Run("sequential run stops on cancellation", func(t *testing.T) {
		table := makeTable(t, customerColumns, validRow("John"))

		eng, err := batch.New(schema.Customers())
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = eng.Validate(cancelled, table)
		assert.ErrorIs(t, err, batch.ErrCancelled)
	})

	t.Run("parallel run stops on cancellation", func(t *testing.T) {
		rows := make([][]string, 50)
		for i := range rows {
			rows[i] = validRow(fmt.Sprintf("Customer %d", i))
		}
		table := makeTable(t, customerColumns, rows...)

		eng, err := batch.New(schema.Customers(), batch.WithWorkers(4))
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = eng.Validate(cancelled, table)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
