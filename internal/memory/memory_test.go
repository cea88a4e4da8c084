package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/fault"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m, err := New([]byte{0x00, 0xE0, 0x12, 0x00})
	assert.NoError(t, err)

	// glyph 0 starts at address 0, glyph F ends at 79
	b, err := m.Read(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)
	b, err = m.Read(79)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x80), b)

	// reserved area is empty
	b, err = m.Read(0x80)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)

	b, err = m.Read(ProgramStart + 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xE0), b)
}

func TestLoad_ProgramTooLarge(t *testing.T) {
	m := &Memory{}
	assert.NoError(t, m.Load(make([]byte, MaxProgramSize)))

	err := m.Load(make([]byte, MaxProgramSize+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}

func TestLoad_ClearsPreviousProgram(t *testing.T) {
	m, err := New([]byte{0xAA, 0xBB, 0xCC})
	assert.NoError(t, err)
	assert.NoError(t, m.Load([]byte{0x11}))

	b, err := m.Read(ProgramStart + 2)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestReadWrite_Bounds(t *testing.T) {
	m := &Memory{}

	assert.NoError(t, m.Write(Size-1, 0x42))
	b, err := m.Read(Size - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), b)

	_, err = m.Read(Size)
	assert.True(t, errors.Is(err, fault.ErrMemoryBounds))
	err = m.Write(Size, 1)
	assert.True(t, errors.Is(err, fault.ErrMemoryBounds))
}

func TestCheckRange(t *testing.T) {
	m := &Memory{}

	tests := []struct {
		name    string
		address uint16
		length  int
		wantErr bool
	}{
		{"start of memory", 0, 16, false},
		{"ends at last byte", Size - 3, 3, false},
		{"one past the end", Size - 2, 3, true},
		{"zero length at end", Size, 0, false},
		{"zero length beyond end", Size + 10, 0, true},
		{"index register overflowed", 0xFFFF, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.CheckRange(tt.address, tt.length)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(0), GlyphAddress(0))
	assert.Equal(t, uint16(25), GlyphAddress(5))
	assert.Equal(t, uint16(75), GlyphAddress(0xF))
	assert.Equal(t, uint16(10), GlyphAddress(0x12))
}

func TestSlice_Empty(t *testing.T) {
	m := &Memory{}

	data, err := m.Slice(Size, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(data))

	_, err = m.Slice(0x10FE, 0)
	assert.True(t, errors.Is(err, fault.ErrMemoryBounds))
}
