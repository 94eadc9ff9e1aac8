package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
)

type csvConfig struct {
	comma    rune
	encoding string
}

// Option configures CSV sources and sinks.
type Option func(*csvConfig)

// WithComma sets the field delimiter. The default is a comma; Brazilian
// spreadsheet exports frequently use a semicolon.
func WithComma(c rune) Option {
	return func(cfg *csvConfig) {
		if c != 0 {
			cfg.comma = c
		}
	}
}

// WithEncoding sets the character encoding of the file. Supported values
// are utf-8 (default, BOM tolerated), latin-1 and windows-1252; unknown
// names surface as ErrUnsupportedEncoding when the file is processed.
func WithEncoding(name string) Option {
	return func(cfg *csvConfig) {
		cfg.encoding = name
	}
}

func newCSVConfig(opts []Option) csvConfig {
	cfg := csvConfig{comma: ',', encoding: EncodingUTF8}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// CSVSource reads a CSV file into a Table. The first row is the header;
// every following row becomes a Record with a zero-based index. Ragged rows
// are tolerated: short rows are padded with empty cells, long rows are
// truncated to the header width. Malformed quoting is a read error.
type CSVSource struct {
	path string
	cfg  csvConfig
}

// NewCSVSource creates a source for the file at path.
func NewCSVSource(path string, opts ...Option) *CSVSource {
	return &CSVSource{path: path, cfg: newCSVConfig(opts)}
}

// ReadAll loads the whole file. It fails with ErrEmptyInput when the file
// has no header row and with ErrReadInput for I/O or parse problems.
func (s *CSVSource) ReadAll(ctx context.Context) (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}
	defer f.Close()

	dec, err := decodingReader(f, s.cfg.encoding)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(dec)
	r.Comma = s.cfg.comma
	r.FieldsPerRecord = -1

	first, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	header, err := NewHeader(first)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrReadCancelled, err)
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrReadInput, err)
		}
		records = append(records, NewRecord(i, header, row))
	}

	return &Table{Header: header, Records: records}, nil
}

// CSVSink writes records to a CSV file, creating parent directories as
// needed. Output is written in the configured encoding (UTF-8 unless
// overridden).
type CSVSink struct {
	path string
	cfg  csvConfig
}

// NewCSVSink creates a sink for the file at path.
func NewCSVSink(path string, opts ...Option) *CSVSink {
	return &CSVSink{path: path, cfg: newCSVConfig(opts)}
}

// WriteAll writes the header followed by every record.
func (s *CSVSink) WriteAll(ctx context.Context, header *Header, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	enc, err := encodingWriter(f, s.cfg.encoding)
	if err != nil {
		f.Close()
		return err
	}

	w := csv.NewWriter(enc)
	w.Comma = s.cfg.comma

	if err := w.Write(header.Columns()); err != nil {
		f.Close()
		return errors.Join(ErrWriteOutput, err)
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			f.Close()
			return errors.Join(ErrWriteCancelled, err)
		}
		if err := w.Write(rec.cells); err != nil {
			f.Close()
			return errors.Join(ErrWriteOutput, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Join(ErrWriteOutput, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return errors.Join(ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}
	return nil
}
