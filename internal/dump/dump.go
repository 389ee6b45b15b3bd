// Package dump writes debug dumps of the machine state.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/memory"
)

// Memory writes the complete memory content byte for byte.
func Memory(w io.Writer, mem *memory.Memory) error {
	data := mem.Bytes()
	n, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("writing memory dump: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("writing memory dump: %w", io.ErrShortWrite)
	}
	return nil
}

// Registers writes the register state as text.
func Registers(w io.Writer, state cpu.State) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PC: $%03X  I: $%03X  SP: %d  DT: $%02X  ST: $%02X  cycles: %d\n",
		state.PC, state.I, state.SP, state.DT, state.ST, state.Cycles)

	for i, value := range state.V {
		if i > 0 {
			if i%8 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteString("  ")
			}
		}
		fmt.Fprintf(&sb, "V%X: $%02X", i, value)
	}
	sb.WriteByte('\n')

	if state.SP > 0 {
		sb.WriteString("stack:")
		for _, address := range state.Stack[:state.SP] {
			fmt.Fprintf(&sb, " $%03X", address)
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing register dump: %w", err)
	}
	return nil
}

// Screen writes the framebuffer as text, one line per display row.
func Screen(w io.Writer, grid display.Grid) error {
	if _, err := io.WriteString(w, grid.String()); err != nil {
		return fmt.Errorf("writing screen dump: %w", err)
	}
	return nil
}
