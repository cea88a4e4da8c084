// Package machine composes memory, registers, display, timers and the
// executor into a CHIP-8 machine that is stepped by a host.
package machine

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/fault"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/registers"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// Config defines the options a machine is created with.
type Config struct {
	Dialect cpu.Dialect
	Random  cpu.RandomSource // random source for CXNN, seeded from the time if nil
	Clock   func() time.Time // wall clock for the timers, time.Now if nil
	Logger  *log.Logger      // optional
	Trace   bool             // log every executed instruction at debug level
}

// Machine is a single CHIP-8 machine. It is not safe for concurrent use.
type Machine struct {
	cpu    *cpu.CPU
	state  cpu.State
	clock  func() time.Time
	logger *log.Logger
	trace  bool

	paused bool
	steps  uint64
}

// New returns a machine with the program loaded.
func New(cfg Config, program []byte) (*Machine, error) {
	if cfg.Random == nil {
		cfg.Random = cpu.NewRandom(0)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	m := &Machine{
		cpu:    cpu.New(cfg.Dialect, cfg.Random),
		clock:  cfg.Clock,
		logger: cfg.Logger,
		trace:  cfg.Trace && cfg.Logger != nil,
		state: cpu.State{
			Memory:    &memory.Memory{},
			Registers: registers.New(memory.ProgramStart),
			Display:   display.New(),
			Timers:    timer.New(cfg.Clock()),
			Input:     &cpu.Input{},
		},
	}

	if err := m.Reset(program); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset reloads the font and the program into memory, clears the display,
// zeroes registers, stack and timers and sets the program counter to the
// program start. The pause state is kept.
func (m *Machine) Reset(program []byte) error {
	if err := m.state.Memory.Load(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	m.state.Registers.Reset(memory.ProgramStart)
	m.state.Display.Clear()
	m.state.Timers.Reset(m.clock())
	m.state.Input.Reset()
	m.steps = 0

	if m.logger != nil {
		m.logger.Debug("Machine reset",
			log.Int("program_size", len(program)),
			log.String("dialect", m.cpu.Dialect().String()))
	}
	return nil
}

// Step executes a single instruction and synchronizes the timers to the
// wall clock. A paused machine does nothing. A returned error is a
// *fault.Fault and leaves the machine state as it was before the step.
func (m *Machine) Step() error {
	if m.paused {
		return nil
	}

	regs := m.state.Registers
	pc := regs.PC()

	ins, err := opcode.Decode(m.state.Memory, pc)
	if err != nil {
		return &fault.Fault{PC: pc, Err: err}
	}

	if m.trace {
		m.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.String("opcode", ins.String()),
			log.String("instruction", disasm.Format(ins, m.cpu.Dialect())))
	}

	effect, err := m.cpu.Execute(&m.state, ins)
	if err != nil {
		return &fault.Fault{PC: pc, Opcode: uint16(ins), Err: err}
	}
	if effect == cpu.Advance {
		regs.Advance(1)
	}

	m.state.Input.Clear()
	m.state.Timers.Sync(m.clock())
	m.steps++
	return nil
}

// SetKey latches a key press for the next step.
func (m *Machine) SetKey(key byte) {
	m.state.Input.Press(key)
}

// ClearKey discards a latched key press.
func (m *Machine) ClearKey() {
	m.state.Input.Clear()
}

// TogglePause pauses a running machine or resumes a paused one.
func (m *Machine) TogglePause() {
	m.SetPaused(!m.paused)
}

// SetPaused sets the pause state. Resuming resynchronizes the timers so
// that they do not count down the time spent paused.
func (m *Machine) SetPaused(paused bool) {
	if m.paused && !paused {
		delay, sound := m.state.Timers.Delay, m.state.Timers.Sound
		m.state.Timers.Reset(m.clock())
		m.state.Timers.Delay, m.state.Timers.Sound = delay, sound
	}
	m.paused = paused
}

// Paused returns whether the machine is paused.
func (m *Machine) Paused() bool {
	return m.paused
}

// FrameBuffer returns a row-major copy of the display pixels.
func (m *Machine) FrameBuffer() []bool {
	return m.state.Display.Export()
}

// SoundTimer returns the sound timer, a host can play a tone while it is not zero.
func (m *Machine) SoundTimer() byte {
	return m.state.Timers.Sound
}

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() byte {
	return m.state.Timers.Delay
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.state.Registers.PC()
}

// Dialect returns the dialect the machine executes instructions in.
func (m *Machine) Dialect() cpu.Dialect {
	return m.cpu.Dialect()
}
