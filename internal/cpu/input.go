package cpu

import (
	"github.com/retroenv/retrochip8/internal/opcode"
)

// KeyCount is the number of keys on the CHIP-8 hex keypad.
const KeyCount = 16

// Input is the key latch set by the host before a step and consumed by the
// instructions executed during that step.
type Input struct {
	key     byte
	pending bool
}

// Press latches a key press. Keys beyond the keypad wrap around.
func (in *Input) Press(key byte) {
	in.key = key % KeyCount
	in.pending = true
}

// Clear discards a pending key press. The last key is kept.
func (in *Input) Clear() {
	in.pending = false
}

// Pending returns the last pressed key and whether a press is pending.
func (in *Input) Pending() (byte, bool) {
	return in.key, in.pending
}

// Reset forgets the last key.
func (in *Input) Reset() {
	in.key = 0
	in.pending = false
}

// keySkip handles EX9E and EXA1, which only compare when a key press is pending.
func keySkip(st *State, ins opcode.Instruction) Effect {
	key, pending := st.Input.Pending()
	if !pending {
		return Advance
	}

	vx := st.Registers.V(ins.X())
	switch ins.NN() {
	case 0x9E:
		return skipIf(st, key == vx)
	case 0xA1:
		return skipIf(st, key != vx)
	}
	return Advance
}

// waitForKey handles FX0A. Without a pending key the program counter is left
// unchanged so the instruction executes again on the next step.
func waitForKey(st *State, ins opcode.Instruction) Effect {
	key, pending := st.Input.Pending()
	if !pending {
		return Redirected
	}
	st.Registers.SetV(ins.X(), key)
	st.Input.Clear()
	return Advance
}
