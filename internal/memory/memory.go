// Package memory implements the CHIP-8 addressable memory.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: built-in hexadecimal glyph sprites
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: program image and data
package memory

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

const (
	// Size is the total memory capacity in bytes.
	Size = 0x1000

	// ProgramStart is the address where program images are loaded and
	// where execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = Size - ProgramStart
)

// ErrOutOfBounds is returned for accesses outside of the valid address range.
var ErrOutOfBounds = chip8.ErrMemoryOutOfBounds

// Memory is the 4KB byte addressable memory of the machine.
type Memory struct {
	data [Size]byte
}

// New returns a new memory instance with the glyph sprites preloaded.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears the memory and restores the glyph sprites.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	copy(m.data[FontAddress:], Font[:])
}

// Load copies a program image to the program start address and returns
// the number of bytes copied. Bytes that do not fit into memory are
// silently dropped.
func (m *Memory) Load(image []byte) int {
	return copy(m.data[ProgramStart:], image)
}

// Read returns the byte at the given program address. Addresses in the
// reserved area below ProgramStart are rejected.
func (m *Memory) Read(address uint16) (byte, error) {
	if address < ProgramStart || int(address) >= Size {
		return 0, fmt.Errorf("%w: read at $%04X", ErrOutOfBounds, address)
	}
	return m.data[address], nil
}

// Word returns the big-endian 16-bit word stored at the given program
// address.
func (m *Memory) Word(address uint16) (uint16, error) {
	high, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	low, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// ReadData returns the byte at any in-range address, including the
// reserved area. It serves data accesses through derived addresses such as
// sprite reads.
func (m *Memory) ReadData(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, fmt.Errorf("%w: read at $%04X", ErrOutOfBounds, address)
	}
	return m.data[address], nil
}

// Slice returns a copy of length bytes starting at the given address.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	if int(address)+length > Size {
		return nil, fmt.Errorf("%w: read of %d bytes at $%04X", ErrOutOfBounds, length, address)
	}
	b := make([]byte, length)
	copy(b, m.data[address:])
	return b, nil
}

// Write stores a byte at the given address. The reserved area is not write
// protected.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= Size {
		return fmt.Errorf("%w: write at $%04X", ErrOutOfBounds, address)
	}
	m.data[address] = value
	return nil
}

// WriteBytes stores data starting at the given address. The complete range
// is checked before any byte is written.
func (m *Memory) WriteBytes(address uint16, data []byte) error {
	if int(address)+len(data) > Size {
		return fmt.Errorf("%w: write of %d bytes at $%04X", ErrOutOfBounds, len(data), address)
	}
	copy(m.data[address:], data)
	return nil
}

// Bytes returns a copy of the complete memory content.
func (m *Memory) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, m.data[:])
	return b
}
