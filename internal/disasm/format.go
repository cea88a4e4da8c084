// Package disasm formats CHIP-8 instructions as assembly code.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the instruction definition matching the instruction word.
func Lookup(ins opcode.Instruction) (*chip8.Instruction, bool) {
	w := uint16(ins)
	for _, op := range chip8.Opcodes[int(ins.N0())] {
		if op.Info.Mask&w == op.Info.Value {
			return op.Instruction, op.Instruction != nil
		}
	}
	return nil, false
}

// Format returns the assembly code of the instruction, or a data directive
// if the word is not a known instruction. The dialect selects the offset
// register of a jump with offset.
func Format(ins opcode.Instruction, dialect cpu.Dialect) string {
	definition, ok := Lookup(ins)
	if !ok {
		return fmt.Sprintf(".word $%04X", uint16(ins))
	}
	if params := operands(ins, dialect); params != "" {
		return fmt.Sprintf("%s %s", definition.Name, params)
	}
	return definition.Name
}

// Target returns the address a jump, call or index load refers to.
func Target(ins opcode.Instruction) (uint16, bool) {
	switch ins.N0() {
	case 0x1, 0x2, 0xA:
		return ins.NNN(), true
	}
	return 0, false
}

// operands formats the parameters of an instruction based on its encoding.
func operands(ins opcode.Instruction, dialect cpu.Dialect) string {
	x, y := ins.X(), ins.Y()

	switch ins.N0() {
	case 0x0:
		if uint16(ins) == 0x00E0 || uint16(ins) == 0x00EE {
			return "" // no parameters
		}
		return fmt.Sprintf("$%03X", ins.NNN())
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", ins.NNN())
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", x, ins.NN())
	case 0x5, 0x9:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0x8:
		if ins.N() == 0x6 || ins.N() == 0xE {
			return fmt.Sprintf("V%X", x)
		}
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", ins.NNN())
	case 0xB:
		if dialect.JumpUsesVX() {
			return fmt.Sprintf("V%X, $%03X", x, ins.NNN())
		}
		return fmt.Sprintf("V0, $%03X", ins.NNN())
	case 0xD:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, ins.N())
	case 0xE:
		return fmt.Sprintf("V%X", x)
	case 0xF:
		return miscOperands(ins)
	}
	return ""
}

func miscOperands(ins opcode.Instruction) string {
	x := ins.X()

	switch ins.NN() {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}
