package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/aouyang1/go-decomposer"
	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var ErrNoInput = errors.New("no input file provided, use --input")

func (f *rootFlags) csvOptions() (*timedataset.CSVOptions, error) {
	delim, size := utf8.DecodeRuneInString(f.delimiter)
	if size == 0 || size != len(f.delimiter) {
		return nil, fmt.Errorf("delimiter must be a single character, got %q, %w", f.delimiter, decomposer.ErrInvalidParameter)
	}
	opt := &timedataset.CSVOptions{
		TimeColumn:  f.timeColumn,
		ValueColumn: f.valueColumn,
		Delimiter:   delim,
		Period:      f.period,
	}
	return opt.Validate()
}

func (f *rootFlags) loadDataset(cmd *cobra.Command) (*timedataset.TimeDataset, error) {
	opt, err := f.csvOptions()
	if err != nil {
		return nil, err
	}

	switch f.input {
	case "":
		return nil, ErrNoInput
	case "-":
		return timedataset.ReadCSV(cmd.InOrStdin(), opt)
	}
	td, err := timedataset.LoadCSV(f.input, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s, %w", f.input, err)
	}
	return td, nil
}

// loadOptions reads decomposition options from the config file when provided
func (f *rootFlags) loadOptions() (*decomposer.Options, error) {
	if f.config == "" {
		return decomposer.NewDefaultOptions(), nil
	}
	data, err := os.ReadFile(f.config)
	if err != nil {
		return nil, err
	}
	var opt decomposer.Options
	if err := json.Unmarshal(data, &opt); err != nil {
		return nil, fmt.Errorf("unable to parse config %s, %w", f.config, err)
	}
	return opt.Validate()
}

func (f *rootFlags) writeJSON(cmd *cobra.Command, v any) error {
	return f.withOutput(cmd, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func (f *rootFlags) withOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	if f.output == "" || f.output == "-" {
		return write(cmd.OutOrStdout())
	}
	file, err := os.Create(f.output)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
