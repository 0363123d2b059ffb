package main

import (
	"fmt"
	"log"
	"os"

	"main/internal/convert"
	"main/internal/itch/jnx"
)

func main() {
	if err := run(os.Args); err != nil {
		if err == convert.ErrUsage {
			fmt.Fprintln(os.Stderr, convert.Usage(os.Args[0]))
			os.Exit(1)
		}
		log.Printf("jnx: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := convert.ParseArgs(args)
	if err != nil {
		return err
	}
	if err := convert.Convert[jnx.Record](cfg, jnx.Decode); err != nil {
		return err
	}
	return convert.Dump(cfg.ParquetFile, os.Stdout, (*jnx.Record).AppendCSV)
}
