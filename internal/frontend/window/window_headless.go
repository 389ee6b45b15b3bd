//go:build headless

package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when the window frontend is used in a build
// without window support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Window is a stub of the windowed frontend for headless builds.
type Window struct{}

// New returns a new window frontend stub.
func New(_ *log.Logger, _ int) *Window {
	return &Window{}
}

// Run always returns ErrUnavailable.
func (w *Window) Run(_ context.Context, _ frontend.Emulator) error {
	return ErrUnavailable
}
