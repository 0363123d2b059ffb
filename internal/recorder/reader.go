package recorder

import (
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/yanun0323/errors"
)

const readBatchSize = 64

// Each streams the rows of a Parquet file to fn in file order.
// The row pointer is only valid for the duration of the call.
func Each[T any](path string, fn func(*T) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open parquet input")
	}
	defer file.Close()

	reader := parquet.NewGenericReader[T](file)
	defer reader.Close()

	var zero T
	rows := make([]T, readBatchSize)
	for {
		for i := range rows {
			rows[i] = zero
		}
		n, readErr := reader.Read(rows)
		for i := 0; i < n; i++ {
			if err := fn(&rows[i]); err != nil {
				return err
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return errors.Wrap(readErr, "read rows")
		}
	}
}
