package machine

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/registers"
)

// Snapshot is a copy of the register state of a machine.
type Snapshot struct {
	V          [registers.Count]byte
	I          uint16
	PC         uint16
	StackDepth int
	Delay      byte
	Sound      byte
	Steps      uint64
	Paused     bool
}

// Snapshot returns a copy of the current register state.
func (m *Machine) Snapshot() Snapshot {
	regs := m.state.Registers
	return Snapshot{
		V:          regs.Values(),
		I:          regs.I(),
		PC:         regs.PC(),
		StackDepth: regs.Depth(),
		Delay:      m.state.Timers.Delay,
		Sound:      m.state.Timers.Sound,
		Steps:      m.steps,
		Paused:     m.paused,
	}
}

// Dump writes the snapshot in a compact two line register view format.
func (s Snapshot) Dump(w io.Writer) error {
	for x, v := range s.V {
		if _, err := fmt.Fprintf(w, "V%X:%02X ", x, v); err != nil {
			return fmt.Errorf("writing register V%X: %w", x, err)
		}
	}
	_, err := fmt.Fprintf(w, "\nPC:%03X I:%03X SP:%d DT:%02X ST:%02X steps:%d",
		s.PC, s.I, s.StackDepth, s.Delay, s.Sound, s.Steps)
	if err != nil {
		return fmt.Errorf("writing registers: %w", err)
	}
	return nil
}
