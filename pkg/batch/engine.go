package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/async"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

// Engine validates whole tables against a schema. It performs no I/O:
// callers load the table through a tabular.Source and decide what to do
// with the partition afterwards.
type Engine struct {
	schema  *schema.Schema
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets how many goroutines evaluate records. Values below 1
// are ignored; the default is single-threaded evaluation. The result is
// identical for any worker count, including ordering.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an engine after vetting the schema declaration.
func New(s *schema.Schema, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrNoSchema
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	e := &Engine{schema: s, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Validate evaluates every record exhaustively and partitions the table:
// records with no failures land in Result.Valid in input order, every
// failure of every other record lands in Result.Failures, also in input
// order. Record-level problems never abort the run; the returned error is
// reserved for run-level conditions (missing columns, strict violations,
// cancellation).
func (e *Engine) Validate(ctx context.Context, table *tabular.Table) (*Result, error) {
	if table == nil || table.Header == nil {
		return nil, ErrNoTable
	}
	if err := e.preflight(table.Header); err != nil {
		return nil, err
	}

	perRecord, err := e.evaluateAll(ctx, table.Records)
	if err != nil {
		return nil, err
	}

	result := &Result{TotalRecords: len(table.Records)}
	for i, rec := range table.Records {
		if failures := perRecord[i]; len(failures) > 0 {
			result.Failures = append(result.Failures, failures...)
		} else {
			result.Valid = append(result.Valid, rec)
		}
	}
	return result, nil
}

// preflight rejects inputs whose shape cannot satisfy the schema. A column
// missing from the header dooms every record at once, which is a run-level
// error rather than len(records) identical failures.
func (e *Engine) preflight(h *tabular.Header) error {
	for _, f := range e.schema.Fields {
		if !h.Has(f.Name) {
			return errors.Join(ErrMissingColumn, fmt.Errorf("column %q", f.Name))
		}
	}

	if e.schema.Strict {
		declared := make(map[string]bool, len(e.schema.Fields))
		for _, f := range e.schema.Fields {
			declared[f.Name] = true
		}
		for _, name := range h.Columns() {
			if !declared[name] {
				return errors.Join(ErrUnknownColumn, fmt.Errorf("column %q", name))
			}
		}
	}
	return nil
}

func (e *Engine) evaluateAll(ctx context.Context, records []tabular.Record) ([][]schema.Failure, error) {
	if e.workers <= 1 || len(records) <= 1 {
		perRecord := make([][]schema.Failure, len(records))
		for i, rec := range records {
			if err := ctx.Err(); err != nil {
				return nil, errors.Join(ErrCancelled, err)
			}
			perRecord[i] = e.schema.Evaluate(rec)
		}
		return perRecord, nil
	}

	// Contiguous chunks per worker; WaitAll returns them in chunk order, so
	// concatenation restores input order no matter which worker finishes
	// first.
	spans := chunkSpans(len(records), e.workers)
	futures := make([]*async.Future[[][]schema.Failure], len(spans))
	for i, sp := range spans {
		futures[i] = async.Async(ctx, sp, func(ctx context.Context, sp span) ([][]schema.Failure, error) {
			out := make([][]schema.Failure, 0, sp.end-sp.start)
			for j := sp.start; j < sp.end; j++ {
				if err := ctx.Err(); err != nil {
					return nil, errors.Join(ErrCancelled, err)
				}
				out = append(out, e.schema.Evaluate(records[j]))
			}
			return out, nil
		})
	}

	parts, err := async.WaitAll(futures...)
	if err != nil {
		return nil, err
	}

	perRecord := make([][]schema.Failure, 0, len(records))
	for _, part := range parts {
		perRecord = append(perRecord, part...)
	}
	return perRecord, nil
}

type span struct {
	start, end int
}

func chunkSpans(n, workers int) []span {
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	spans := make([]span, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}
