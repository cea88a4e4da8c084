package registers

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/fault"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	f := New(0x200)

	assert.Equal(t, uint16(0x200), f.PC())
	assert.Equal(t, uint16(0), f.I())
	assert.Equal(t, 0, f.Depth())
	assert.Equal(t, [Count]byte{}, f.Values())
}

func TestGeneralRegisters(t *testing.T) {
	f := New(0x200)
	for x := 0; x < Count; x++ {
		f.SetV(x, byte(x*3))
	}
	for x := 0; x < Count; x++ {
		assert.Equal(t, byte(x*3), f.V(x))
	}

	f.SetFlag(true)
	assert.Equal(t, byte(1), f.V(Flag))
	f.SetFlag(false)
	assert.Equal(t, byte(0), f.V(Flag))
}

func TestAdvance(t *testing.T) {
	f := New(0x200)
	f.Advance(1)
	assert.Equal(t, uint16(0x202), f.PC())
	f.Advance(2)
	assert.Equal(t, uint16(0x206), f.PC())
}

func TestStack(t *testing.T) {
	f := New(0x200)

	// grows past the initial capacity
	for i := 0; i < 2*stackCapacity; i++ {
		f.Push(uint16(0x200 + 2*i))
	}
	assert.Equal(t, 2*stackCapacity, f.Depth())

	for i := 2*stackCapacity - 1; i >= 0; i-- {
		address, err := f.Pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x200+2*i), address)
	}

	_, err := f.Pop()
	assert.True(t, errors.Is(err, fault.ErrStackUnderflow))
}

func TestAddI(t *testing.T) {
	f := New(0x200)
	f.SetI(0xFF0)
	f.AddI(0x20)
	assert.Equal(t, uint16(0x1010), f.I())

	f.SetI(0xFFF0)
	f.AddI(0xFF)
	assert.Equal(t, uint16(0xFFFF), f.I())
	f.AddI(1)
	assert.Equal(t, uint16(0xFFFF), f.I())
}

func TestReset(t *testing.T) {
	f := New(0x200)
	f.SetV(3, 9)
	f.SetI(0x300)
	f.Push(0x204)
	f.SetPC(0x400)

	f.Reset(0x200)
	assert.Equal(t, byte(0), f.V(3))
	assert.Equal(t, uint16(0), f.I())
	assert.Equal(t, 0, f.Depth())
	assert.Equal(t, uint16(0x200), f.PC())
}
