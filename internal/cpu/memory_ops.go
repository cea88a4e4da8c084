package cpu

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
)

// draw handles DXYN: an N row sprite at I is XORed onto the screen at
// (VX mod 64, VY mod 32). Rows below the bottom edge are not drawn.
func draw(st *State, ins opcode.Instruction) error {
	x := int(st.Registers.V(ins.X())) % display.Width
	y := int(st.Registers.V(ins.Y())) % display.Height

	rows := int(ins.N())
	if y+rows > display.Height {
		rows = display.Height - y
	}

	sprite, err := st.Memory.Slice(st.Registers.I(), rows)
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	collided := false
	for row, value := range sprite {
		if st.Display.DrawByte(x, y+row, value) {
			collided = true
		}
	}
	st.Registers.SetFlag(collided)
	return nil
}

// misc handles the FXNN group of timer, input, index and memory instructions.
func (c *CPU) misc(st *State, ins opcode.Instruction) (Effect, error) {
	regs := st.Registers
	x := ins.X()

	switch ins.NN() {
	case 0x07:
		regs.SetV(x, st.Timers.Delay)

	case 0x0A:
		return waitForKey(st, ins), nil

	case 0x15:
		st.Timers.Delay = regs.V(x)

	case 0x18:
		st.Timers.Sound = regs.V(x)

	case 0x1E:
		regs.AddI(uint16(regs.V(x)))

	case 0x29:
		regs.SetI(memory.GlyphAddress(regs.V(x)))

	case 0x33:
		return Advance, storeBCD(st, ins)

	case 0x55:
		return Advance, c.storeRegisters(st, ins)

	case 0x65:
		return Advance, c.loadRegisters(st, ins)
	}

	return Advance, nil
}

// BCD splits a value into its hundreds, tens and units decimal digits.
func BCD(value byte) (hundreds, tens, units byte) {
	return value / 100, value / 10 % 10, value % 10
}

func storeBCD(st *State, ins opcode.Instruction) error {
	address := st.Registers.I()
	if err := st.Memory.CheckRange(address, 3); err != nil {
		return fmt.Errorf("storing BCD: %w", err)
	}

	hundreds, tens, units := BCD(st.Registers.V(ins.X()))
	for i, digit := range [...]byte{hundreds, tens, units} {
		if err := st.Memory.Write(address+uint16(i), digit); err != nil {
			return fmt.Errorf("storing BCD: %w", err)
		}
	}
	return nil
}

// storeRegisters handles FX55, writing V0..VX to memory at I.
func (c *CPU) storeRegisters(st *State, ins opcode.Instruction) error {
	regs := st.Registers
	count := ins.X() + 1
	address := regs.I()
	if err := st.Memory.CheckRange(address, count); err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}

	for i := 0; i < count; i++ {
		if err := st.Memory.Write(address+uint16(i), regs.V(i)); err != nil {
			return fmt.Errorf("storing registers: %w", err)
		}
	}
	c.incrementIndex(st, count)
	return nil
}

// loadRegisters handles FX65, reading V0..VX from memory at I.
func (c *CPU) loadRegisters(st *State, ins opcode.Instruction) error {
	regs := st.Registers
	count := ins.X() + 1
	data, err := st.Memory.Slice(regs.I(), count)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}

	for i, value := range data {
		regs.SetV(i, value)
	}
	c.incrementIndex(st, count)
	return nil
}

func (c *CPU) incrementIndex(st *State, count int) {
	if c.dialect.IncrementsIndex() {
		st.Registers.AddI(uint16(count))
	}
}
