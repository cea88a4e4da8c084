package cpu

import (
	"github.com/retroenv/retrochip8/internal/opcode"
)

// arithmetic handles the 8XYN register to register group. All results
// saturate instead of wrapping, VF is written after the result.
func (c *CPU) arithmetic(st *State, ins opcode.Instruction) {
	regs := st.Registers
	x, y := ins.X(), ins.Y()
	vx, vy := regs.V(x), regs.V(y)

	switch ins.N() {
	case 0x0:
		regs.SetV(x, vy)

	case 0x1:
		regs.SetV(x, vx|vy)

	case 0x2:
		regs.SetV(x, vx&vy)

	case 0x3:
		regs.SetV(x, vx^vy)

	case 0x4:
		regs.SetV(x, saturatingAdd(vx, vy))
		regs.SetFlag(int(vx)+int(vy) > 0xFF)

	case 0x5:
		regs.SetV(x, saturatingSub(vx, vy))
		regs.SetFlag(vx > vy)

	case 0x6:
		value := c.shiftSource(st, ins)
		regs.SetV(x, value>>1)
		regs.SetFlag(value&0x01 != 0)

	case 0x7:
		regs.SetV(x, saturatingSub(vy, vx))
		regs.SetFlag(vy > vx)

	case 0xE:
		value := c.shiftSource(st, ins)
		regs.SetV(x, value<<1)
		regs.SetFlag(value&0x80 != 0)
	}
}

// shiftSource returns the value a shift instruction operates on. In the
// SUPER-CHIP dialect VY is copied into VX first.
func (c *CPU) shiftSource(st *State, ins opcode.Instruction) byte {
	if c.dialect.ShiftCopiesVY() {
		st.Registers.SetV(ins.X(), st.Registers.V(ins.Y()))
	}
	return st.Registers.V(ins.X())
}

func saturatingSub(a, b byte) byte {
	if a > b {
		return a - b
	}
	return 0
}
