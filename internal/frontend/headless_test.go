package frontend

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeEmulator struct {
	frames   int
	endAfter int
	err      error
}

func (f *fakeEmulator) RunFrame() error {
	if f.endAfter > 0 && f.frames == f.endAfter {
		return machine.ErrProgramEnded
	}
	if f.err != nil {
		return f.err
	}
	f.frames++
	return nil
}

func (f *fakeEmulator) Screen() display.Grid {
	return display.Grid{}
}

func (f *fakeEmulator) Status() string {
	return "fake"
}

type fakeRunner struct {
	fakeEmulator
	ran bool
}

func (f *fakeRunner) RunToEnd(context.Context) error {
	f.ran = true
	return nil
}

func TestHeadless_FrameLimit(t *testing.T) {
	emu := &fakeEmulator{}
	h := NewHeadless(log.NewTestLogger(t), 5)

	assert.NoError(t, h.Run(context.Background(), emu))
	assert.Equal(t, 5, emu.frames)
}

func TestHeadless_ProgramEnded(t *testing.T) {
	emu := &fakeEmulator{endAfter: 3}
	h := NewHeadless(log.NewTestLogger(t), 10)

	assert.NoError(t, h.Run(context.Background(), emu))
	assert.Equal(t, 3, emu.frames)
}

func TestHeadless_Error(t *testing.T) {
	errTest := errors.New("test error")
	emu := &fakeEmulator{err: errTest}
	h := NewHeadless(log.NewTestLogger(t), 10)

	err := h.Run(context.Background(), emu)
	assert.True(t, errors.Is(err, errTest))
}

func TestHeadless_Canceled(t *testing.T) {
	emu := &fakeEmulator{}
	h := NewHeadless(log.NewTestLogger(t), 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx, emu)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, emu.frames)
}

func TestHeadless_RunToEnd(t *testing.T) {
	emu := &fakeRunner{}
	h := NewHeadless(log.NewTestLogger(t), 0)

	assert.NoError(t, h.Run(context.Background(), emu))
	assert.True(t, emu.ran)
	assert.Equal(t, 0, emu.frames)
}

func TestHeadless_NoFrameLimit(t *testing.T) {
	h := NewHeadless(log.NewTestLogger(t), 0)

	err := h.Run(context.Background(), &fakeEmulator{})
	assert.True(t, errors.Is(err, ErrNoFrameLimit))
}

func TestHeadless_Machine(t *testing.T) {
	// ld I, $000; drw V0, V0, 5; jp $204
	m := machine.New(log.NewTestLogger(t), machine.Config{CyclesPerFrame: 4})
	m.Load([]byte{0xA0, 0x00, 0xD0, 0x05, 0x12, 0x04})
	h := NewHeadless(log.NewTestLogger(t), 2)

	assert.NoError(t, h.Run(context.Background(), m))
	assert.Equal(t, 14, m.Screen().Count())
	assert.Equal(t, uint64(2), m.Frames())
}
