// Package app provides the main application helper for the emulator.
package app

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, name string, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(name, log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the loaded ROM and the machine.
func PrintInfo(logger *log.Logger, opts options.Program, program []byte, m *machine.Machine) {
	if opts.Quiet {
		return
	}

	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("dialect", m.Dialect().String()),
		log.Int("ips", opts.InstructionsPerSec),
	)
	if opts.Paused {
		logger.Info("Machine is paused, press space to resume")
	}
}

// Title returns the title of the emulator screen view.
func Title(opts options.Program) string {
	return fmt.Sprintf("retrochip8 - %s (%s)", opts.Input, opts.Dialect)
}
