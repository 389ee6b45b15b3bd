//go:build !headless

package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

const (
	framesPerSecond = 60
	statusBarHeight = 18
	title           = "retrochip8"
)

// Window is a frontend that renders the framebuffer into a window and
// runs one emulator frame per ebiten tick.
type Window struct {
	logger *log.Logger
	scale  int
}

// New returns a new window frontend. The scale is the size of a single
// display pixel in screen pixels.
func New(logger *log.Logger, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		logger: logger,
		scale:  scale,
	}
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// the context is canceled.
func (w *Window) Run(ctx context.Context, emu frontend.Emulator) error {
	g := &game{
		ctx:    ctx,
		logger: w.logger,
		emu:    emu,
		scale:  w.scale,
	}

	ebiten.SetTPS(framesPerSecond)
	ebiten.SetWindowSize(display.Width*w.scale, display.Height*w.scale+statusBarHeight)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return g.err
}

type game struct {
	ctx    context.Context
	logger *log.Logger
	emu    frontend.Emulator
	scale  int

	canvas *ebiten.Image
	ended  bool
	err    error
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.ended {
		return nil
	}

	if err := g.updateKeys(); err != nil {
		g.err = err
		return ebiten.Termination
	}

	err := g.emu.RunFrame()
	switch {
	case err == nil:
	case errors.Is(err, machine.ErrProgramEnded):
		g.logger.Info("Program ended, press Escape to close the window")
		g.ended = true
	default:
		g.err = err
		return ebiten.Termination
	}
	return nil
}

// updateKeys passes the state of the mapped host keys to the emulator.
func (g *game) updateKeys() error {
	receiver, ok := g.emu.(frontend.KeyReceiver)
	if !ok {
		return nil
	}
	for key, host := range keypad.Layout {
		if err := receiver.SetKey(byte(key), ebiten.IsKeyPressed(ebitenKeys[host])); err != nil {
			return fmt.Errorf("setting key: %w", err)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(display.Width, display.Height)
	}
	g.canvas.WritePixels(Pixels(g.emu.Screen(), PixelOn, PixelOff))

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, opts)

	status := g.emu.Status()
	if g.ended {
		status += "  ended"
	}
	baselineY := display.Height*g.scale + statusBarHeight - 5
	text.Draw(screen, status, basicfont.Face7x13, 4, baselineY, color.White)
}

func (g *game) Layout(_, _ int) (int, int) {
	return display.Width * g.scale, display.Height*g.scale + statusBarHeight
}
