// Package disasm implements a linear CHIP-8 program listing with labels for
// jump and call destinations.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// Disasm produces an instruction listing of a program image.
type Disasm struct {
	image []byte
	base  uint16

	callDestinations   set.Set[uint16]
	branchDestinations set.Set[uint16]
}

// New returns a disassembler for the image that is located at base.
func New(image []byte, base uint16) *Disasm {
	return &Disasm{
		image:              image,
		base:               base,
		callDestinations:   set.New[uint16](),
		branchDestinations: set.New[uint16](),
	}
}

// Write prints a listing of the image located at base to the writer.
func Write(w io.Writer, image []byte, base uint16) error {
	return New(image, base).Process(w)
}

// Process collects the jump and call destinations and writes the listing.
func (dis *Disasm) Process(w io.Writer) error {
	dis.collectDestinations()

	for offset := 0; offset < len(dis.image); offset += instruction.Size {
		address := dis.base + uint16(offset)

		if label := dis.label(address); label != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		if err := dis.writeLine(w, address, dis.image[offset:]); err != nil {
			return fmt.Errorf("writing instruction at $%04X: %w", address, err)
		}
	}
	return nil
}

// collectDestinations marks all addresses inside the image that are
// referenced by jump and call instructions.
func (dis *Disasm) collectDestinations() {
	for offset := 0; offset+1 < len(dis.image); offset += instruction.Size {
		ins, _ := instruction.FromBytes(dis.image[offset:])
		if !dis.inImage(ins.NNN) {
			continue
		}

		switch ins.Op {
		case instruction.OpCall:
			dis.callDestinations.Add(ins.NNN)
		case instruction.OpJp:
			dis.branchDestinations.Add(ins.NNN)
		default:
		}
	}
}

// inImage returns whether the address is the start of an instruction
// word of the listing.
func (dis *Disasm) inImage(address uint16) bool {
	if address < dis.base {
		return false
	}
	offset := int(address - dis.base)
	return offset < len(dis.image) && offset%instruction.Size == 0
}

// label returns the label name of an address or an empty string if the
// address is not referenced.
func (dis *Disasm) label(address uint16) string {
	switch {
	case dis.callDestinations.Contains(address):
		return fmt.Sprintf(funcNaming, address)
	case dis.branchDestinations.Contains(address):
		return fmt.Sprintf(labelNaming, address)
	default:
		return ""
	}
}

func (dis *Disasm) writeLine(w io.Writer, address uint16, data []byte) error {
	ins, ok := instruction.FromBytes(data)
	if !ok {
		_, err := fmt.Fprintf(w, "%04X  %02X     .byte $%02X\n", address, data[0], data[0])
		return err
	}

	code := ins.String()
	switch ins.Op {
	case instruction.OpJp, instruction.OpCall:
		if label := dis.label(ins.NNN); label != "" && ins.Name() != "" {
			code = ins.Name() + " " + label
		}
	default:
	}

	_, err := fmt.Fprintf(w, "%04X  %02X %02X  %s\n", address, data[0], data[1], code)
	return err
}
