package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		ins      opcode.Instruction
		expected string
	}{
		{0x00E0, chip8.Cls.Name},
		{0x00EE, chip8.Ret.Name},
		{0x1234, chip8.Jp.Name + " $234"},
		{0x2300, chip8.Call.Name + " $300"},
		{0x3234, chip8.Se.Name + " V2, $34"},
		{0x9AB0, chip8.Sne.Name + " VA, VB"},
		{0x6A05, chip8.Ld.Name + " VA, $05"},
		{0xA2F0, chip8.Ld.Name + " I, $2F0"},
		{0x7101, chip8.Add.Name + " V1, $01"},
		{0x8126, chip8.Shr.Name + " V1"},
		{0x812E, chip8.Shl.Name + " V1"},
		{0xC3FF, chip8.Rnd.Name + " V3, $FF"},
		{0xD125, chip8.Drw.Name + " V1, V2, $5"},
		{0xE39E, chip8.Skp.Name + " V3"},
		{0xFFFF, ".word $FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.ins.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.ins, cpu.SuperChip))
		})
	}
}

func TestFormat_JumpWithOffset(t *testing.T) {
	assert.Equal(t, chip8.Jp.Name+" V3, $345", Format(0xB345, cpu.SuperChip))
	assert.Equal(t, chip8.Jp.Name+" V0, $345", Format(0xB345, cpu.COSMAC))
}

func TestTarget(t *testing.T) {
	target, ok := Target(0x2345)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x345), target)

	_, ok = Target(0x6345)
	assert.False(t, ok)
}

func TestWrite(t *testing.T) {
	program := []byte{
		0x00, 0xE0, // cls
		0x12, 0x04, // jp $204
		0x12, 0x02, // jp $202
		0xFF, 0xFF, // data
		0x00, 0x00, // trailing zeros
	}

	var buf bytes.Buffer
	err := Write(&buf, program, Options{})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{
		"; CHIP-8 ROM Disassembly",
		".org $200",
		"",
		"Start:",
		"    " + chip8.Cls.Name,
		"_label_0202:",
		"    " + chip8.Jp.Name + " $204",
		"_label_0204:",
		"    " + chip8.Jp.Name + " $202",
		"    .byte $FF, $FF",
	}
	assert.Equal(t, expected, lines)
}

func TestWrite_Comments(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []byte{0x00, 0xE0, 0x00, 0x00, 0xAB}, Options{
		HexComments:    true,
		OffsetComments: true,
		ZeroBytes:      true,
	})
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "; $200 00 E0")
	assert.Contains(t, out, "; $202 00 00")
	assert.Contains(t, out, ".byte $AB")
	assert.Contains(t, out, "; $204 AB")
}

func TestWrite_Dialect(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, []byte{0xB2, 0x10}, Options{Dialect: cpu.COSMAC}))
	assert.Contains(t, buf.String(), chip8.Jp.Name+" V0, $210")

	buf.Reset()
	assert.NoError(t, Write(&buf, []byte{0xB2, 0x10}, Options{Dialect: cpu.SuperChip}))
	assert.Contains(t, buf.String(), chip8.Jp.Name+" V2, $210")
}
