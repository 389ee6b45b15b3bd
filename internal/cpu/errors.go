package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

var (
	// ErrStackOverflow is returned when a call exceeds the stack capacity.
	ErrStackOverflow = chip8.ErrStackOverflow

	// ErrStackUnderflow is returned when a return is executed with an
	// empty stack.
	ErrStackUnderflow = chip8.ErrStackUnderflow

	// ErrUnimplementedOpcode is returned for instructions that decode but
	// have no semantics in this engine. It is not fatal, the program counter
	// has already been advanced past the instruction.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
)

// OpcodeError describes a failed instruction execution.
type OpcodeError struct {
	PC          uint16
	Instruction instruction.Instruction
	Err         error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("executing opcode %04X (%s) at $%03X: %v",
		e.Instruction.Raw, e.Instruction, e.PC, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}
