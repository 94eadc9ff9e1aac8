package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/recordkit/pkg/batch"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

func benchmarkTable(b *testing.B, rows int) *tabular.Table {
	b.Helper()
	h, err := tabular.NewHeader(customerColumns)
	if err != nil {
		b.Fatal(err)
	}
	records := make([]tabular.Record, rows)
	for i := 0; i < rows; i++ {
		var row []string
		if i%4 == 0 {
			row = []string{"Bad Customer", "111.111.111-11", "not-an-email", "-5", "200"}
		} else {
			row = []string{fmt.Sprintf("Customer %d", i), "111.444.777-35", "customer@example.com", "1500.50", "30"}
		}
		records[i] = tabular.NewRecord(i, h, row)
	}
	return &tabular.Table{Header: h, Records: records}
}

func benchmarkValidate(b *testing.B, rows, workers int) {
	table := benchmarkTable(b, rows)
	eng, err := batch.New(schema.Customers(), batch.WithWorkers(workers))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := eng.Validate(ctx, table)
		if err != nil {
			b.Fatal(err)
		}
		if result.TotalRecords != rows {
			b.Fatalf("expected %d records, got %d", rows, result.TotalRecords)
		}
	}
}

func BenchmarkValidate100(b *testing.B) { benchmarkValidate(b, 100, 1) }

func BenchmarkValidate10000(b *testing.B) { benchmarkValidate(b, 10000, 1) }

func BenchmarkValidate10000Workers4(b *testing.B) { benchmarkValidate(b, 10000, 4) }

func BenchmarkValidate10000Workers8(b *testing.B) { benchmarkValidate(b, 10000, 8) }
