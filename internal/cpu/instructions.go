package cpu

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// opCALL pushes the address of the next instruction and jumps to NNN.
func (c *CPU) opCALL(ins instruction.Instruction) error {
	if int(c.SP) >= StackSize {
		return fmt.Errorf("%w: call depth exceeds %d", ErrStackOverflow, StackSize)
	}
	c.Stack[c.SP] = c.PC
	c.SP++
	c.PC = ins.NNN
	return nil
}

// opRET pops the return address from the stack.
func (c *CPU) opRET() error {
	if c.SP == 0 {
		return ErrStackUnderflow
	}
	c.SP--
	c.PC = c.Stack[c.SP]
	return nil
}

// opADD adds VY to VX, VF is set to 1 on carry.
// The flag is written last, so it wins if X is the flag register.
func (c *CPU) opADD(ins instruction.Instruction) {
	sum := uint16(c.V[ins.X]) + uint16(c.V[ins.Y])
	c.V[ins.X] = byte(sum)
	c.V[FlagRegister] = flag(sum > 0xFF)
}

// opSUB subtracts VY from VX, VF is set to 1 if VX > VY.
func (c *CPU) opSUB(ins instruction.Instruction) {
	vx, vy := c.V[ins.X], c.V[ins.Y]
	c.V[ins.X] = byte(int(vx) - int(vy))
	c.V[FlagRegister] = flag(vx > vy)
}

// opSUBN sets VX to VY - VX, VF is set to 1 if VY > VX.
func (c *CPU) opSUBN(ins instruction.Instruction) {
	vx, vy := c.V[ins.X], c.V[ins.Y]
	c.V[ins.X] = byte(int(vy) - int(vx))
	c.V[FlagRegister] = flag(vy > vx)
}

// opSHR shifts VX right by one, VF receives the shifted out bit.
func (c *CPU) opSHR(ins instruction.Instruction) {
	vx := c.V[ins.X]
	c.V[ins.X] = vx >> 1
	c.V[FlagRegister] = vx & 0x01
}

// opSHL shifts VX left by one, VF receives the shifted out bit.
func (c *CPU) opSHL(ins instruction.Instruction) {
	vx := c.V[ins.X]
	c.V[ins.X] = vx << 1
	c.V[FlagRegister] = vx >> 7
}

// opDRW draws N sprite rows read from I at VX, VY. VF is set to 1 if a
// set pixel was erased.
func (c *CPU) opDRW(ins instruction.Instruction) error {
	rows, err := c.mem.Slice(c.I, int(ins.N))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}
	collided := c.fb.DrawSprite(c.V[ins.X], c.V[ins.Y], rows)
	c.V[FlagRegister] = flag(collided)
	return nil
}

// opLDB stores the decimal digits of VX at I, I+1 and I+2.
func (c *CPU) opLDB(ins instruction.Instruction) error {
	value := c.V[ins.X]
	digits := []byte{value / 100, (value / 10) % 10, value % 10}
	if err := c.mem.WriteBytes(c.I, digits); err != nil {
		return fmt.Errorf("storing BCD digits: %w", err)
	}
	return nil
}

// opSTORE stores V0 through VX at I. I is not modified.
func (c *CPU) opSTORE(ins instruction.Instruction) error {
	if err := c.mem.WriteBytes(c.I, c.V[:ins.X+1]); err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}
	return nil
}

// opLOAD loads V0 through VX from I. I is not modified.
func (c *CPU) opLOAD(ins instruction.Instruction) error {
	values, err := c.mem.Slice(c.I, int(ins.X)+1)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}
	copy(c.V[:], values)
	return nil
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
