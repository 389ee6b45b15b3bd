// Package instruction decodes CHIP-8 instruction words.
//
// # Instruction Format
//
// Every CHIP-8 instruction is a 16-bit big-endian word. The decoder splits
// a word into fixed bit fields, regardless of which instruction it encodes:
//
//	bits 15-12: opcode class
//	bits 11-8:  register index X
//	bits 7-4:   register index Y
//	bits 7-0:   immediate byte KK
//	bits 11-0:  address NNN
//	bits 3-0:   nibble N (sprite height, sub-operation selector)
//
// Decoding is total: every word decodes to an Instruction. Words that do not
// encode a known operation decode to OpInvalid instead of failing, so that
// the execution engine can report them without aborting.
//
// # Operations
//
// Decode resolves the class and, for classes 0x0, 0x8, 0xE and 0xF, the
// sub-operation field into a closed Op enumeration. The execution engine
// switches over Op values only.
//
// # Mnemonics
//
// Names are looked up in the CHIP-8 opcode table of retrogolib, operands
// are formatted in assembler syntax:
//
//	ins := instruction.Decode(0xD125)
//	fmt.Println(ins) // drw V1, V2, $5
package instruction
