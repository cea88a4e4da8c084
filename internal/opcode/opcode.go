// Package opcode decodes CHIP-8 instruction words.
package opcode

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/fault"
)

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

// Reader is the memory access needed to fetch an instruction.
type Reader interface {
	Read(address uint16) (byte, error)
}

// Instruction is a decoded 16-bit CHIP-8 instruction word.
type Instruction uint16

// Decode fetches the two bytes at pc and pc+1 and returns the instruction.
func Decode(mem Reader, pc uint16) (Instruction, error) {
	hi, err := mem.Read(pc)
	if err != nil {
		return 0, fmt.Errorf("decoding at $%04X: %w: %w", pc, fault.ErrDecode, err)
	}
	lo, err := mem.Read(pc + 1)
	if err != nil {
		return 0, fmt.Errorf("decoding at $%04X: %w: %w", pc, fault.ErrDecode, err)
	}
	return New(hi, lo), nil
}

// New returns the instruction formed by the high and low byte.
func New(hi, lo byte) Instruction {
	return Instruction(uint16(hi)<<8 | uint16(lo))
}

// Nibbles returns the four 4-bit fields, most significant first.
func (i Instruction) Nibbles() [4]byte {
	return [4]byte{i.N0(), i.N1(), i.N2(), i.N3()}
}

// N0 returns the most significant nibble, which selects the instruction group.
func (i Instruction) N0() byte { return byte(i>>12) & 0xF }

// N1 returns the second nibble.
func (i Instruction) N1() byte { return byte(i>>8) & 0xF }

// N2 returns the third nibble.
func (i Instruction) N2() byte { return byte(i>>4) & 0xF }

// N3 returns the least significant nibble.
func (i Instruction) N3() byte { return byte(i) & 0xF }

// X returns the first register operand.
func (i Instruction) X() int { return int(i.N1()) }

// Y returns the second register operand.
func (i Instruction) Y() int { return int(i.N2()) }

// N returns the 4-bit immediate value.
func (i Instruction) N() byte { return i.N3() }

// NN returns the 8-bit immediate value.
func (i Instruction) NN() byte { return byte(i) }

// NNN returns the 12-bit address.
func (i Instruction) NNN() uint16 { return uint16(i) & 0x0FFF }

// Bytes returns the instruction in memory byte order.
func (i Instruction) Bytes() [2]byte {
	return [2]byte{byte(i >> 8), byte(i)}
}

func (i Instruction) String() string {
	return fmt.Sprintf("%04X", uint16(i))
}
