// Package main implements the main entry point for a Chip-8 emulator
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/statsview"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

const name = "retrochip8"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, name, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, name, opts, version, commit, date)

	program, err := loader.New().Load(opts)
	if err != nil {
		logger.Fatal("Loading ROM failed", log.Err(err))
	}

	cfg, err := config.CreateMachineConfig(logger, opts)
	if err != nil {
		logger.Fatal("Invalid machine configuration", log.Err(err))
	}

	m, err := machine.New(cfg, program)
	if err != nil {
		logger.Fatal("Creating machine failed", log.Err(err))
	}
	m.SetPaused(opts.Paused)
	app.PrintInfo(logger, opts, program, m)

	if opts.StatsView {
		statsview.Launch(ctx, logger)
	}

	h := host.New(logger, m, program, host.Config{
		Title:              app.Title(opts),
		InstructionsPerSec: opts.InstructionsPerSec,
	})
	if err := h.Run(ctx); err != nil {
		logger.Fatal("Running emulator failed", log.Err(err))
	}
}
