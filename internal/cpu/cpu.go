// Package cpu implements the CHIP-8 execution engine.
package cpu

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

const (
	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16

	// FlagRegister is the index of the register that receives carry,
	// borrow, shift and collision flags.
	FlagRegister = 0xF

	// StackSize is the maximum number of nested subroutine calls.
	StackSize = 16
)

// Config contains the execution engine settings.
type Config struct {
	// Trace logs every executed instruction at debug level.
	Trace bool

	// Rand is the source for the random instruction. A randomly seeded
	// generator is used if it is nil.
	Rand *rand.Rand
}

// CPU is the register, stack and timer state of the machine together with
// the memory and framebuffer it operates on.
type CPU struct {
	// V are the general purpose registers V0-VF, VF doubles as flag register.
	V [RegisterCount]byte
	// I is the address register.
	I uint16
	// PC is the address of the next instruction.
	PC uint16
	// SP is the number of return addresses on the stack.
	SP uint8
	// Stack holds the return addresses, Stack[SP-1] is the top entry.
	Stack [StackSize]uint16

	// DT is the delay timer.
	DT byte
	// ST is the sound timer.
	ST byte

	// Cycles counts the successfully executed instructions.
	Cycles uint64

	logger *log.Logger
	mem    *memory.Memory
	fb     *display.Framebuffer
	rand   *rand.Rand
	trace  bool
}

// New returns a new CPU operating on the given memory and framebuffer,
// with the program counter set to the program start address.
func New(logger *log.Logger, mem *memory.Memory, fb *display.Framebuffer, cfg Config) *CPU {
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	c := &CPU{
		logger: logger,
		mem:    mem,
		fb:     fb,
		rand:   rnd,
		trace:  cfg.Trace,
	}
	c.Reset()
	return c
}

// Reset clears registers, stack and timers and sets the program counter to
// the program start address. Memory and framebuffer are not modified.
func (c *CPU) Reset() {
	c.V = [RegisterCount]byte{}
	c.I = 0
	c.PC = memory.ProgramStart
	c.SP = 0
	c.Stack = [StackSize]uint16{}
	c.DT = 0
	c.ST = 0
	c.Cycles = 0
}

// Memory returns the memory the CPU operates on.
func (c *CPU) Memory() *memory.Memory {
	return c.mem
}

// Framebuffer returns the framebuffer the CPU draws to.
func (c *CPU) Framebuffer() *display.Framebuffer {
	return c.fb
}

// State is a copy of the engine registers.
type State struct {
	V      [RegisterCount]byte
	I      uint16
	PC     uint16
	SP     uint8
	Stack  [StackSize]uint16
	DT     byte
	ST     byte
	Cycles uint64
}

// State returns a copy of the current register state.
func (c *CPU) State() State {
	return State{
		V:      c.V,
		I:      c.I,
		PC:     c.PC,
		SP:     c.SP,
		Stack:  c.Stack,
		DT:     c.DT,
		ST:     c.ST,
		Cycles: c.Cycles,
	}
}
