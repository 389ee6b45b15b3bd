package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Opcode returns the entry of the retrogolib CHIP-8 opcode table that
// matches the instruction word, or false if no entry matches.
func (i Instruction) Opcode() (chip8.Opcode, bool) {
	for _, op := range chip8.Opcodes[int(i.Class)] {
		if op.Info.Mask&i.Raw == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// Name returns the instruction mnemonic, or an empty string for words that
// do not encode a known instruction.
func (i Instruction) Name() string {
	op, ok := i.Opcode()
	if !ok {
		return ""
	}
	return op.Instruction.Name
}

// String formats the instruction in assembler syntax, for example
// "drw V1, V2, $5". Unknown words are formatted as a data word.
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf(".word $%04X", i.Raw)
	}
	if params := i.operands(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// operands formats the operand list of the instruction.
func (i Instruction) operands() string {
	switch i.Op {
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("$%03X", i.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case OpSeImm, OpSneImm, OpLdImm, OpAddImm, OpRnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", i.X)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLdF:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLdB:
		return fmt.Sprintf("B, V%X", i.X)
	case OpStore:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}
