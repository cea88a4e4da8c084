// Package cpu implements the CHIP-8 instruction executor.
package cpu

import (
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/registers"
	"github.com/retroenv/retrochip8/internal/timer"
)

// Effect tells the caller how the program counter has to be updated after
// an instruction was executed.
type Effect int

const (
	// Advance means the program counter has to be advanced to the next instruction.
	Advance Effect = iota
	// Redirected means the instruction already set the program counter.
	Redirected
)

// State is the machine state an instruction operates on. It is owned by a
// single machine and passed to the executor for the duration of a step.
type State struct {
	Memory    *memory.Memory
	Registers *registers.File
	Display   *display.FrameBuffer
	Timers    *timer.Timers
	Input     *Input
}

// CPU executes decoded instructions against a State.
type CPU struct {
	dialect Dialect
	random  RandomSource
}

// New returns a CPU using the given dialect and random source.
func New(dialect Dialect, random RandomSource) *CPU {
	return &CPU{
		dialect: dialect,
		random:  random,
	}
}

// Dialect returns the dialect the CPU executes instructions in.
func (c *CPU) Dialect() Dialect {
	return c.dialect
}

// Execute runs a single instruction. All checks that can fail are done
// before the state is modified, so a returned error leaves the state untouched.
// Unknown instructions are ignored.
func (c *CPU) Execute(st *State, ins opcode.Instruction) (Effect, error) {
	switch ins.N0() {
	case 0x0:
		return c.system(st, ins)
	case 0x1:
		st.Registers.SetPC(ins.NNN())
		return Redirected, nil
	case 0x2:
		st.Registers.Push(st.Registers.PC())
		st.Registers.SetPC(ins.NNN())
		return Redirected, nil
	case 0x3:
		return skipIf(st, st.Registers.V(ins.X()) == ins.NN()), nil
	case 0x4:
		return skipIf(st, st.Registers.V(ins.X()) != ins.NN()), nil
	case 0x5:
		if ins.N() != 0 {
			return Advance, nil
		}
		return skipIf(st, st.Registers.V(ins.X()) == st.Registers.V(ins.Y())), nil
	case 0x6:
		st.Registers.SetV(ins.X(), ins.NN())
		return Advance, nil
	case 0x7:
		st.Registers.SetV(ins.X(), saturatingAdd(st.Registers.V(ins.X()), ins.NN()))
		return Advance, nil
	case 0x8:
		c.arithmetic(st, ins)
		return Advance, nil
	case 0x9:
		if ins.N() != 0 {
			return Advance, nil
		}
		return skipIf(st, st.Registers.V(ins.X()) != st.Registers.V(ins.Y())), nil
	case 0xA:
		st.Registers.SetI(ins.NNN())
		return Advance, nil
	case 0xB:
		c.jumpWithOffset(st, ins)
		return Redirected, nil
	case 0xC:
		st.Registers.SetV(ins.X(), c.random.Byte()&ins.NN())
		return Advance, nil
	case 0xD:
		return Advance, draw(st, ins)
	case 0xE:
		return keySkip(st, ins), nil
	case 0xF:
		return c.misc(st, ins)
	}
	return Advance, nil
}

// system handles the 0NNN group, of which only CLS and RET are supported.
func (c *CPU) system(st *State, ins opcode.Instruction) (Effect, error) {
	switch uint16(ins) {
	case 0x00E0:
		st.Display.Clear()
	case 0x00EE:
		address, err := st.Registers.Pop()
		if err != nil {
			return Advance, err
		}
		// the popped address is the call instruction, advancing skips it
		st.Registers.SetPC(address)
	}
	return Advance, nil
}

func (c *CPU) jumpWithOffset(st *State, ins opcode.Instruction) {
	offset := st.Registers.V(0)
	if c.dialect.JumpUsesVX() {
		offset = st.Registers.V(ins.X())
	}
	st.Registers.SetPC(ins.NNN() + uint16(offset))
}

// skipIf skips the next instruction if the condition is met.
func skipIf(st *State, condition bool) Effect {
	if !condition {
		return Advance
	}
	st.Registers.Advance(2)
	return Redirected
}

func saturatingAdd(a, b byte) byte {
	sum := int(a) + int(b)
	if sum > 0xFF {
		return 0xFF
	}
	return byte(sum)
}
