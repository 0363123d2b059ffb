package convert

import (
	"errors"
	"fmt"
	"path/filepath"
)

const defaultParquetFile = "itch.parquet"

// ErrUsage reports a CLI invocation with the wrong argument count.
var ErrUsage = errors.New("convert: wrong argument count")

// ParseArgs maps the CLI surface onto a Config.
// Accepted forms: <program> <pcap_file> [<parquet_file>].
func ParseArgs(args []string) (Config, error) {
	switch len(args) {
	case 2:
		return Config{PcapFile: args[1], ParquetFile: defaultParquetFile}, nil
	case 3:
		return Config{PcapFile: args[1], ParquetFile: args[2]}, nil
	default:
		return Config{}, ErrUsage
	}
}

// Usage returns the one-line usage string for a feed binary.
func Usage(program string) string {
	return fmt.Sprintf("usage: %s <pcap_file> [<parquet_file>]", filepath.Base(program))
}
