// Package memory implements the CHIP-8 address space.
package memory

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/fault"
)

// CHIP-8 memory layout.
//
//	0x000-0x04F: hex digit font, 16 glyphs of 5 bytes
//	0x050-0x1FF: reserved
//	0x200-0xFFF: program
const (
	// Size is the number of addressable bytes.
	Size = 0x1000
	// ProgramStart is the address programs are loaded at and start executing from.
	ProgramStart = 0x200
	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = Size - ProgramStart
	// GlyphSize is the number of bytes (rows) of a single font glyph.
	GlyphSize = 5
)

// ErrProgramTooLarge is returned when a program image does not fit into memory.
var ErrProgramTooLarge = errors.New("program too large")

var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4 KiB byte array holding the font and the loaded program.
type Memory struct {
	data [Size]byte
}

// New returns a memory initialized with the font and the given program.
func New(program []byte) (*Memory, error) {
	m := &Memory{}
	if err := m.Load(program); err != nil {
		return nil, err
	}
	return m, nil
}

// Load clears the memory, copies the font to address 0 and the program to ProgramStart.
func (m *Memory) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m.data = [Size]byte{}
	copy(m.data[:], font[:])
	copy(m.data[ProgramStart:], program)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, fmt.Errorf("reading $%04X: %w", address, fault.ErrMemoryBounds)
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= Size {
		return fmt.Errorf("writing $%04X: %w", address, fault.ErrMemoryBounds)
	}
	m.data[address] = value
	return nil
}

// Slice returns the length bytes starting at address. The returned slice
// aliases the memory and is only valid until the next mutation.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	if err := m.CheckRange(address, length); err != nil {
		return nil, err
	}
	return m.data[address : int(address)+length], nil
}

// CheckRange verifies that length bytes starting at address are addressable.
// An empty range may start at most at the end of memory.
func (m *Memory) CheckRange(address uint16, length int) error {
	if int(address) > Size {
		return fmt.Errorf("accessing $%04X: %w", address, fault.ErrMemoryBounds)
	}
	if length <= 0 {
		return nil
	}
	if int(address)+length > Size {
		return fmt.Errorf("accessing $%04X-$%04X: %w", address, int(address)+length-1, fault.ErrMemoryBounds)
	}
	return nil
}

// GlyphAddress returns the address of the font glyph for the hex digit.
func GlyphAddress(digit byte) uint16 {
	return uint16(digit%16) * GlyphSize
}
