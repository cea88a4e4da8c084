// Package fault defines the errors a CHIP-8 step can fail with.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is returned when the program counter addresses fewer than 2 remaining memory bytes.
	ErrDecode = errors.New("truncated instruction")
	// ErrStackUnderflow is returned when a subroutine return finds an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryBounds is returned when a computed address exceeds the memory size.
	ErrMemoryBounds = errors.New("memory address out of bounds")
)

// Fault wraps an error that aborted a machine step together with the
// program counter and opcode that caused it.
type Fault struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at $%03X (opcode %04X): %s", f.PC, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
