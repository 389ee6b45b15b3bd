// Package config handles application configuration and setup
package config

import (
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

// MachineConfig returns the machine settings for the program options.
func MachineConfig(opts options.Program) machine.Config {
	return machine.Config{
		CyclesPerFrame: opts.CyclesPerFrame,
		Trace:          opts.Trace,
	}
}
