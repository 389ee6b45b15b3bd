// Package frontend defines the presentation layer of the interpreter and
// contains the headless implementation.
package frontend

import (
	"context"

	"github.com/retroenv/retrochip8/internal/display"
)

// Names of the supported frontends.
const (
	Headless = "headless"
	Terminal = "terminal"
	Window   = "window"
)

// Emulator is the interpreter as seen by a frontend.
type Emulator interface {
	// RunFrame executes one 60Hz frame worth of instructions and ticks the timers.
	RunFrame() error
	// Screen returns a snapshot of the framebuffer.
	Screen() display.Grid
	// Status returns a one line summary of the execution state.
	Status() string
}

// KeyReceiver is implemented by emulators that accept keypad input.
type KeyReceiver interface {
	SetKey(key byte, pressed bool) error
}

// Frontend presents the emulator output and drives its frames.
type Frontend interface {
	Run(ctx context.Context, emu Emulator) error
}
