// Package machine ties memory, framebuffer and execution engine together
// and paces execution in 60Hz frames.
package machine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCyclesPerFrame is the number of instructions executed per frame,
// resulting in 600 instructions per second at 60 frames per second.
const DefaultCyclesPerFrame = 10

// ErrProgramEnded is returned by RunFrame once the program counter reached
// the end of memory.
var ErrProgramEnded = errors.New("program ended")

// Config contains the machine settings.
type Config struct {
	CyclesPerFrame int
	Trace          bool
	Rand           *rand.Rand
}

// Machine is a complete interpreter instance.
type Machine struct {
	logger *log.Logger
	cfg    Config

	mem *memory.Memory
	fb  *display.Framebuffer
	cpu  *cpu.CPU
	keys *keypad.Keypad

	frames uint64
}

// New returns a new machine with empty program memory.
func New(logger *log.Logger, cfg Config) *Machine {
	if cfg.CyclesPerFrame <= 0 {
		cfg.CyclesPerFrame = DefaultCyclesPerFrame
	}

	mem := memory.New()
	fb := display.New()
	cpuCfg := cpu.Config{
		Trace: cfg.Trace,
		Rand:  cfg.Rand,
	}

	return &Machine{
		logger: logger,
		cfg:    cfg,
		mem:    mem,
		fb:     fb,
		cpu:    cpu.New(logger, mem, fb, cpuCfg),
		keys:   keypad.New(),
	}
}

// Load resets the machine and loads the program image. It returns the
// number of bytes that were loaded, images exceeding the available memory
// are truncated.
func (m *Machine) Load(image []byte) int {
	m.mem.Reset()
	m.fb.Clear()
	m.cpu.Reset()
	m.keys.Reset()
	m.frames = 0

	loaded := m.mem.Load(image)
	if loaded < len(image) {
		m.logger.Warn("Program image truncated",
			log.Int("size", len(image)),
			log.Int("loaded", loaded))
	}
	m.logger.Debug("Program loaded", log.Int("size", loaded), log.Hex("address", memory.ProgramStart))
	return loaded
}

// RunFrame executes the configured number of instructions and ticks the
// timers once. Unimplemented opcodes are skipped.
func (m *Machine) RunFrame() error {
	for range m.cfg.CyclesPerFrame {
		if m.cpu.Halted() {
			return ErrProgramEnded
		}

		err := m.cpu.Step()
		if err == nil {
			continue
		}
		if !errors.Is(err, cpu.ErrUnimplementedOpcode) {
			return fmt.Errorf("running frame %d: %w", m.frames, err)
		}
		m.logger.Debug("Skipping unimplemented opcode", log.Err(err))
	}

	if m.cpu.TickTimers() {
		m.logger.Debug("Sound timer expired", log.Int("frame", int(m.frames)))
	}
	m.frames++
	return nil
}

// RunToEnd executes instructions without frame pacing until the program
// counter reaches the end of memory or the context is canceled.
func (m *Machine) RunToEnd(ctx context.Context) error {
	if err := m.cpu.Run(ctx); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Screen returns a snapshot of the framebuffer.
func (m *Machine) Screen() display.Grid {
	return m.fb.Snapshot()
}

// SetKey updates the state of a keypad key. It is called by the frontends
// before a frame is run.
func (m *Machine) SetKey(key byte, pressed bool) error {
	return m.keys.Set(key, pressed)
}

// Status returns a one line summary of the execution state.
func (m *Machine) Status() string {
	state := m.cpu.State()
	status := fmt.Sprintf("PC $%03X  I $%03X  DT %02X  ST %02X  frame %d",
		state.PC, state.I, state.DT, state.ST, m.frames)

	if m.cpu.SoundActive() {
		status += "  sound"
	}
	if keys := m.keys.String(); keys != "" {
		status += "  keys " + keys
	}
	return status
}

// State returns a copy of the engine registers.
func (m *Machine) State() cpu.State {
	return m.cpu.State()
}

// Memory returns the machine memory.
func (m *Machine) Memory() *memory.Memory {
	return m.mem
}

// Frames returns the number of completed frames.
func (m *Machine) Frames() uint64 {
	return m.frames
}
