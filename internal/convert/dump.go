package convert

import (
	"bufio"
	"io"

	"main/internal/recorder"
)

// Dump re-reads a Parquet file and writes one CSV line per row. It renders
// the values as read back and does not compare them with the rows that were
// written. The render function is a feed record's AppendCSV.
func Dump[T any](path string, out io.Writer, render func(*T, []byte) []byte) error {
	buffered := bufio.NewWriter(out)
	line := make([]byte, 0, 512)
	err := recorder.Each(path, func(row *T) error {
		line = render(row, line[:0])
		_, werr := buffered.Write(line)
		return werr
	})
	if err != nil {
		return err
	}
	return buffered.Flush()
}
