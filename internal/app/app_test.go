package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestTitle(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: "pong.ch8"},
		Flags:      options.Flags{Dialect: "cosmac"},
	}
	assert.Equal(t, "retrochip8 - pong.ch8 (cosmac)", Title(opts))
}

func TestPrintInfo(t *testing.T) {
	program := []byte{0x00, 0xE0}
	m, err := machine.New(machine.Config{}, program)
	assert.NoError(t, err)

	logger := log.NewTestLogger(t)
	opts := options.Program{Flags: options.Flags{Paused: true, InstructionsPerSec: 700}}
	PrintBanner(logger, "retrochip8", opts, "1.0.0", "abc", "2024-01-01")
	PrintInfo(logger, opts, program, m)
}
