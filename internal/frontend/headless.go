package frontend

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoFrameLimit is returned when the headless frontend has neither a frame
// limit nor an emulator that can run without frame pacing.
var ErrNoFrameLimit = errors.New("headless frontend requires a frame limit")

// runner is implemented by emulators that can execute a program without
// frame pacing.
type runner interface {
	RunToEnd(ctx context.Context) error
}

// HeadlessFrontend runs the emulator without any presentation. With a frame
// limit of 0 the program runs until the end of memory is reached.
type HeadlessFrontend struct {
	logger *log.Logger
	frames int
}

// NewHeadless returns a new headless frontend.
func NewHeadless(logger *log.Logger, frames int) *HeadlessFrontend {
	return &HeadlessFrontend{
		logger: logger,
		frames: frames,
	}
}

// Run executes the emulator until the frame limit is reached, the program
// ends or the context is canceled.
func (h *HeadlessFrontend) Run(ctx context.Context, emu Emulator) error {
	if h.frames == 0 {
		r, ok := emu.(runner)
		if !ok {
			return ErrNoFrameLimit
		}
		if err := r.RunToEnd(ctx); err != nil {
			return fmt.Errorf("running headless: %w", err)
		}
		h.logger.Debug("Program ended", log.String("status", emu.Status()))
		return nil
	}

	for frame := range h.frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := emu.RunFrame()
		if errors.Is(err, machine.ErrProgramEnded) {
			h.logger.Debug("Program ended", log.Int("frame", frame))
			return nil
		}
		if err != nil {
			return fmt.Errorf("running headless: %w", err)
		}
	}

	h.logger.Debug("Frame limit reached", log.String("status", emu.Status()))
	return nil
}
