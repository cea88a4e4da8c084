// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachineConfig creates the machine configuration from the program options
func CreateMachineConfig(logger *log.Logger, opts options.Program) (machine.Config, error) {
	dialect, err := cpu.ParseDialect(opts.Dialect)
	if err != nil {
		return machine.Config{}, fmt.Errorf("parsing dialect: %w", err)
	}

	return machine.Config{
		Dialect: dialect,
		Random:  cpu.NewRandom(opts.Seed),
		Logger:  logger,
		Trace:   opts.Trace,
	}, nil
}
