// Package registers implements the CHIP-8 register file and call stack.
package registers

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/fault"
)

const (
	// Count is the number of general purpose registers V0-VF.
	Count = 16
	// Flag is the index of VF, the carry, borrow and collision output register.
	Flag = 0xF

	// stackCapacity is the initial capacity of the call stack, not a limit.
	stackCapacity = 16
)

// File holds the general purpose registers, the index register, the
// program counter and the call stack.
type File struct {
	v     [Count]byte
	i     uint16
	pc    uint16
	stack []uint16
}

// New returns a register file with the program counter set to pc.
func New(pc uint16) *File {
	f := &File{}
	f.Reset(pc)
	return f
}

// Reset zeroes all registers, empties the stack and sets the program counter.
func (f *File) Reset(pc uint16) {
	f.v = [Count]byte{}
	f.i = 0
	f.pc = pc
	f.stack = make([]uint16, 0, stackCapacity)
}

// V returns general purpose register x. x must be in 0-15.
func (f *File) V(x int) byte {
	return f.v[x]
}

// SetV sets general purpose register x. x must be in 0-15.
func (f *File) SetV(x int, value byte) {
	f.v[x] = value
}

// SetFlag sets VF to 1 if set is true, 0 otherwise.
func (f *File) SetFlag(set bool) {
	if set {
		f.v[Flag] = 1
	} else {
		f.v[Flag] = 0
	}
}

// I returns the index register.
func (f *File) I() uint16 {
	return f.i
}

// SetI sets the index register.
func (f *File) SetI(value uint16) {
	f.i = value
}

// AddI adds to the index register, stopping at $FFFF so that an overflowed
// index keeps addressing beyond memory.
func (f *File) AddI(value uint16) {
	if sum := uint32(f.i) + uint32(value); sum < 0xFFFF {
		f.i = uint16(sum)
	} else {
		f.i = 0xFFFF
	}
}

// PC returns the program counter.
func (f *File) PC() uint16 {
	return f.pc
}

// SetPC sets the program counter.
func (f *File) SetPC(value uint16) {
	f.pc = value
}

// Advance moves the program counter forward by n instructions.
func (f *File) Advance(n int) {
	f.pc += uint16(2 * n)
}

// Push pushes a return address onto the call stack.
func (f *File) Push(address uint16) {
	f.stack = append(f.stack, address)
}

// Pop removes and returns the most recently pushed return address.
func (f *File) Pop() (uint16, error) {
	if len(f.stack) == 0 {
		return 0, fmt.Errorf("popping return address: %w", fault.ErrStackUnderflow)
	}
	address := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return address, nil
}

// Depth returns the number of addresses on the call stack.
func (f *File) Depth() int {
	return len(f.stack)
}

// Values returns a copy of the general purpose registers.
func (f *File) Values() [Count]byte {
	return f.v
}
