// Package fileprocessor handles file loading and listing output for the listing tool
package fileprocessor

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the input ROM and writes its listing to the output file or stdout
func ProcessFile(logger *log.Logger, opts options.Program) error {
	program, err := loader.New().Load(opts)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		_ = writer.Close()
	}()

	if !opts.Quiet {
		logger.Info("Processing Chip-8 ROM",
			log.String("file", opts.Input),
			log.Int("size", len(program)))
	}

	if err := Process(writer, program, opts); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// Process writes the listing of the program using the output options
func Process(writer io.Writer, program []byte, opts options.Program) error {
	name := opts.Dialect
	if name == "" {
		name = options.DefaultDialect
	}
	dialect, err := cpu.ParseDialect(name)
	if err != nil {
		return fmt.Errorf("parsing dialect: %w", err)
	}

	listingOptions := disasm.Options{
		HexComments:    !opts.NoHexComments,
		OffsetComments: !opts.NoOffsets,
		ZeroBytes:      opts.ZeroBytes,
		Dialect:        dialect,
	}
	return disasm.Write(writer, program, listingOptions)
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
