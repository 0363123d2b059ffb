package recorder

import (
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/yanun0323/errors"
)

// Writer appends wide rows to a Parquet file, cutting a row group whenever
// the configured row count fills. The schema is derived from T's parquet
// struct tags.
type Writer[T any] struct {
	cfg     Config
	file    *os.File
	pw      *parquet.GenericWriter[T]
	inGroup int
	rows    int64
}

// NewWriter creates the output file and a writer over it.
func NewWriter[T any](cfg Config) (*Writer[T], error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	file, err := os.Create(cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "create parquet output")
	}
	return &Writer[T]{
		cfg:  cfg,
		file: file,
		pw:   parquet.NewGenericWriter[T](file),
	}, nil
}

// Append writes one row.
func (w *Writer[T]) Append(row T) error {
	if _, err := w.pw.Write([]T{row}); err != nil {
		return errors.Wrap(err, "write row")
	}
	w.rows++
	w.inGroup++
	if w.inGroup >= w.cfg.RowGroupSize {
		if err := w.pw.Flush(); err != nil {
			return errors.Wrap(err, "flush row group")
		}
		w.inGroup = 0
	}
	return nil
}

// Rows returns the number of rows appended so far.
func (w *Writer[T]) Rows() int64 {
	return w.rows
}

// Close flushes the final row group, finishes the file footer and closes
// the file.
func (w *Writer[T]) Close() error {
	if err := w.pw.Close(); err != nil {
		_ = w.file.Close()
		return errors.Wrap(err, "close parquet writer")
	}
	return errors.Wrap(w.file.Close(), "close parquet output")
}
