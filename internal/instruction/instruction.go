package instruction

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

// Op identifies a decoded CHIP-8 operation.
type Op uint8

// Operations that the decoder can produce.
const (
	OpInvalid Op = iota // word does not encode a known operation
	OpSys               // 0nnn
	OpCls               // 00E0
	OpRet               // 00EE
	OpJp                // 1nnn
	OpCall              // 2nnn
	OpSeImm             // 3xkk
	OpSneImm            // 4xkk
	OpSeReg             // 5xy_
	OpLdImm             // 6xkk
	OpAddImm            // 7xkk
	OpLdReg             // 8xy0
	OpOr                // 8xy1
	OpAnd               // 8xy2
	OpXor               // 8xy3
	OpAddReg            // 8xy4
	OpSub               // 8xy5
	OpShr               // 8xy6
	OpSubn              // 8xy7
	OpShl               // 8xyE
	OpSneReg            // 9xy_
	OpLdI               // Annn
	OpJpV0              // Bnnn
	OpRnd               // Cxkk
	OpDrw               // Dxyn
	OpSkp               // Ex9E
	OpSknp              // ExA1
	OpLdVxDT            // Fx07
	OpLdVxK             // Fx0A
	OpLdDTVx            // Fx15
	OpLdSTVx            // Fx18
	OpAddI              // Fx1E
	OpLdF               // Fx29
	OpLdB               // Fx33
	OpStore             // Fx55
	OpLoad              // Fx65
)

// unimplemented lists the operations that decode but have no semantics in
// the execution engine. They depend on keyboard input or the glyph address
// lookup.
var unimplemented = map[Op]struct{}{
	OpInvalid: {},
	OpSys:     {},
	OpSkp:     {},
	OpSknp:    {},
	OpLdVxK:   {},
	OpLdF:     {},
}

// Instruction is a decoded CHIP-8 instruction word. It is a plain value and
// is never mutated after decoding.
type Instruction struct {
	Raw   uint16
	Op    Op
	Class uint8  // bits 15-12
	X     uint8  // bits 11-8
	Y     uint8  // bits 7-4
	N     uint8  // bits 3-0
	KK    uint8  // bits 7-0
	NNN   uint16 // bits 11-0
}

// Decode splits a 16-bit instruction word into its fields and resolves the
// operation. It accepts every possible word.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Raw:   word,
		Class: uint8((word & 0xF000) >> 12),
		X:     uint8((word & 0x0F00) >> 8),
		Y:     uint8((word & 0x00F0) >> 4),
		N:     uint8(word & 0x000F),
		KK:    uint8(word & 0x00FF),
		NNN:   word & 0x0FFF,
	}
	ins.Op = resolveOp(ins)
	return ins
}

// FromBytes decodes the big-endian instruction word stored in the first two
// bytes of data.
func FromBytes(data []byte) (Instruction, bool) {
	if len(data) < Size {
		return Instruction{}, false
	}
	return Decode(uint16(data[0])<<8 | uint16(data[1])), true
}

// Implemented returns whether the execution engine defines semantics for
// the instruction.
func (i Instruction) Implemented() bool {
	_, ok := unimplemented[i.Op]
	return !ok
}

func resolveOp(ins Instruction) Op {
	switch ins.Class {
	case 0x0:
		switch ins.Raw {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
		return OpSys
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeImm
	case 0x4:
		return OpSneImm
	case 0x5:
		return OpSeReg
	case 0x6:
		return OpLdImm
	case 0x7:
		return OpAddImm
	case 0x8:
		return resolveALU(ins.N)
	case 0x9:
		return OpSneReg
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch ins.KK {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		return resolveMisc(ins.KK)
	}
	return OpInvalid
}

// resolveALU maps the low nibble of a class 0x8 word.
func resolveALU(sub uint8) Op {
	switch sub {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpInvalid
	}
}

// resolveMisc maps the low byte of a class 0xF word.
func resolveMisc(sub uint8) Op {
	switch sub {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	default:
		return OpInvalid
	}
}
