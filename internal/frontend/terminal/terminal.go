// Package terminal implements a frontend that renders the framebuffer into
// an ANSI terminal using half block characters.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/input"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	framesPerSecond = 60

	// minimum terminal size for the screen and the status line
	minColumns = display.Width
	minRows    = display.Height/2 + 1

	keyCtrlC  = 0x03
	keyEscape = 0x1B

	keyBufferSize = 16

	escCursorHome = "\x1b[H"
	escClearLine  = "\x1b[K"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

// ErrNotATerminal is returned when the input is not an interactive terminal.
var ErrNotATerminal = errors.New("terminal frontend requires an interactive terminal")

// Terminal is a frontend that renders into a terminal and quits when P,
// Escape or Ctrl+C is pressed. Terminals report no key releases, a keypad
// key is held for the frame following its key press.
type Terminal struct {
	logger *log.Logger
	in     *os.File
	out    io.Writer
}

// New returns a new terminal frontend reading keys from in and rendering
// to out.
func New(logger *log.Logger, in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Run puts the terminal into raw mode and runs one emulator frame per
// 60Hz tick until a quit key is pressed or the context is canceled.
func (t *Terminal) Run(ctx context.Context, emu frontend.Emulator) error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotATerminal
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	if width < minColumns || height < minRows {
		return fmt.Errorf("terminal size %dx%d is too small, %dx%d required",
			width, height, minColumns, minRows)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keys := make(chan byte, keyBufferSize)
	go t.readKeys(cancel, keys)

	_, _ = io.WriteString(t.out, escHideCursor+escClear)
	defer func() { _, _ = io.WriteString(t.out, escShowCursor) }()

	return t.loop(ctx, emu, keys)
}

func (t *Terminal) loop(ctx context.Context, emu frontend.Emulator, keys <-chan byte) error {
	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	receiver, _ := emu.(frontend.KeyReceiver)
	var held []byte

	ended := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			if receiver != nil {
				var err error
				if held, err = updateKeys(receiver, held, keys); err != nil {
					return err
				}
			}

			if !ended {
				err := emu.RunFrame()
				switch {
				case err == nil:
				case errors.Is(err, machine.ErrProgramEnded):
					ended = true
				default:
					return err
				}
			}

			status := emu.Status()
			if ended {
				status += "  ended, press p to quit"
			}
			if err := Render(t.out, emu.Screen(), status); err != nil {
				return fmt.Errorf("rendering screen: %w", err)
			}
		}
	}
}

// updateKeys releases the keys held during the last frame and presses the
// keys that were read since then. It returns the keys that are now held.
func updateKeys(receiver frontend.KeyReceiver, held []byte, keys <-chan byte) ([]byte, error) {
	for _, key := range held {
		if err := receiver.SetKey(key, false); err != nil {
			return nil, fmt.Errorf("releasing key: %w", err)
		}
	}
	held = held[:0]

	for {
		select {
		case key := <-keys:
			if err := receiver.SetKey(key, true); err != nil {
				return nil, fmt.Errorf("pressing key: %w", err)
			}
			held = append(held, key)
		default:
			return held, nil
		}
	}
}

// readKeys forwards keypad keys read from the input and cancels the
// frontend once a quit key is read. The goroutine stays blocked in the read
// after the frontend stopped until the process exits.
func (t *Terminal) readKeys(cancel context.CancelFunc, keys chan<- byte) {
	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if err != nil {
			cancel()
			return
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case 'p', 'P', keyEscape, keyCtrlC:
			cancel()
			return
		}

		key, ok := keypadKey(buf[0])
		if !ok {
			continue
		}
		select {
		case keys <- key:
		default:
		}
	}
}

// keypadKey returns the keypad key that a typed character is mapped to.
func keypadKey(c byte) (byte, bool) {
	var host input.Key
	switch {
	case c >= '0' && c <= '9':
		host = input.Key0 + input.Key(c-'0')
	case c >= 'a' && c <= 'z':
		host = input.A + input.Key(c-'a')
	case c >= 'A' && c <= 'Z':
		host = input.A + input.Key(c-'A')
	default:
		return 0, false
	}
	return keypad.Lookup(host)
}

// Render writes the grid as half block characters, two display rows per
// terminal line, followed by the status line.
func Render(w io.Writer, grid display.Grid, status string) error {
	buf := bufio.NewWriter(w)
	_, _ = buf.WriteString(escCursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			_, _ = buf.WriteString(halfBlock(grid[y][x], grid[y+1][x]))
		}
		_, _ = buf.WriteString("\r\n")
	}

	_, _ = buf.WriteString(status)
	_, _ = buf.WriteString(escClearLine)
	return buf.Flush()
}

func halfBlock(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	default:
		return " "
	}
}
