// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
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

// MachineOptions returns the machine options matching the program options.
// A zero seed leaves the machine seeded from the current time.
func MachineOptions(opts options.Program) []machine.Option {
	machineOpts := []machine.Option{
		machine.WithQuirks(machine.Quirks{
			ShiftUsesVY:          opts.ShiftUsesVY,
			LoadStoreIncrementsI: opts.LoadStoreIncrementsI,
			LogicResetsVF:        opts.LogicResetsVF,
		}),
	}
	if opts.Seed != 0 {
		machineOpts = append(machineOpts, machine.WithSeed(opts.Seed))
	}
	return machineOpts
}

// RunnerConfig returns the runner configuration matching the program options.
func RunnerConfig(opts options.Program) runner.Config {
	return runner.Config{
		Speed:    opts.Speed,
		Trace:    opts.Trace,
		Realtime: opts.Realtime,
	}
}
