// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
)

// ErrEmptyROM is returned for a ROM file without any content.
var ErrEmptyROM = errors.New("empty ROM file")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file given by the input option.
// CHIP-8 ROMs are raw program images without any header.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}
	return data, nil
}

// LoadFromReader reads a ROM image and verifies that it fits into memory.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than fits to detect oversized images without reading them completely
	data, err := io.ReadAll(io.LimitReader(reader, memory.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > memory.MaxProgramSize:
		return nil, fmt.Errorf("%w: maximum size is %d bytes", memory.ErrProgramTooLarge, memory.MaxProgramSize)
	}
	return data, nil
}
