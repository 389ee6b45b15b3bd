package cpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Step fetches, decodes and executes a single instruction.
// The program counter is advanced before the instruction is executed, so
// jumps and calls set it to their target without a further advance.
func (c *CPU) Step() error {
	pc := c.PC

	// Fetch
	word, err := c.mem.Word(pc)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}
	c.PC += instruction.Size

	// Decode
	ins := instruction.Decode(word)
	if c.trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", ins.String()))
	}

	// Execute
	if !ins.Implemented() {
		return &OpcodeError{PC: pc, Instruction: ins, Err: ErrUnimplementedOpcode}
	}
	if err := c.execute(ins); err != nil {
		return &OpcodeError{PC: pc, Instruction: ins, Err: err}
	}

	c.Cycles++
	return nil
}

// Run executes instructions until the next fetch would read past the end of
// memory. Unimplemented opcodes are skipped, any other error stops
// execution. The context is checked between instructions.
func (c *CPU) Run(ctx context.Context) error {
	for c.canFetch() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.Step()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrUnimplementedOpcode) {
			c.logger.Debug("Skipping unimplemented opcode", log.Err(err))
			continue
		}
		return err
	}
	return nil
}

// canFetch returns whether a complete instruction word is located before
// the end of memory at the program counter.
func (c *CPU) canFetch() bool {
	return int(c.PC)+instruction.Size <= memory.Size
}

// TickTimers decrements the delay and sound timers if they are active.
// It is meant to be called at 60Hz by the caller and returns true if the
// sound timer expired with this tick.
func (c *CPU) TickTimers() bool {
	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		c.ST--
		return c.ST == 0
	}
	return false
}

// SoundActive returns whether the sound timer is running.
func (c *CPU) SoundActive() bool {
	return c.ST > 0
}

func (c *CPU) execute(ins instruction.Instruction) error {
	switch ins.Op {
	case instruction.OpCls:
		c.fb.Clear()
	case instruction.OpRet:
		return c.opRET()
	case instruction.OpJp:
		c.PC = ins.NNN
	case instruction.OpCall:
		return c.opCALL(ins)
	case instruction.OpSeImm:
		c.skipIf(c.V[ins.X] == ins.KK)
	case instruction.OpSneImm:
		c.skipIf(c.V[ins.X] != ins.KK)
	case instruction.OpSeReg:
		c.skipIf(c.V[ins.X] == c.V[ins.Y])
	case instruction.OpLdImm:
		c.V[ins.X] = ins.KK
	case instruction.OpAddImm:
		c.V[ins.X] += ins.KK
	case instruction.OpLdReg:
		c.V[ins.X] = c.V[ins.Y]
	case instruction.OpOr:
		c.V[ins.X] |= c.V[ins.Y]
	case instruction.OpAnd:
		c.V[ins.X] &= c.V[ins.Y]
	case instruction.OpXor:
		c.V[ins.X] ^= c.V[ins.Y]
	case instruction.OpAddReg:
		c.opADD(ins)
	case instruction.OpSub:
		c.opSUB(ins)
	case instruction.OpShr:
		c.opSHR(ins)
	case instruction.OpSubn:
		c.opSUBN(ins)
	case instruction.OpShl:
		c.opSHL(ins)
	case instruction.OpSneReg:
		c.skipIf(c.V[ins.X] != c.V[ins.Y])
	case instruction.OpLdI:
		c.I = ins.NNN
	case instruction.OpJpV0:
		c.PC = uint16(c.V[0]) + ins.NNN
	case instruction.OpRnd:
		c.V[ins.X] = byte(c.rand.UintN(256)) & ins.KK
	case instruction.OpDrw:
		return c.opDRW(ins)
	case instruction.OpLdVxDT:
		c.V[ins.X] = c.DT
	case instruction.OpLdDTVx:
		c.DT = c.V[ins.X]
	case instruction.OpLdSTVx:
		c.ST = c.V[ins.X]
	case instruction.OpAddI:
		c.I += uint16(c.V[ins.X])
	case instruction.OpLdB:
		return c.opLDB(ins)
	case instruction.OpStore:
		return c.opSTORE(ins)
	case instruction.OpLoad:
		return c.opLOAD(ins)
	default:
		return ErrUnimplementedOpcode
	}
	return nil
}

// skipIf skips the next instruction if the condition is met.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.PC += instruction.Size
	}
}

// Halted returns whether the program counter reached the end of memory.
func (c *CPU) Halted() bool {
	return !c.canFetch()
}
