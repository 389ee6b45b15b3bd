package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Fields(t *testing.T) {
	ins := Decode(0x1234)

	assert.Equal(t, uint16(0x1234), ins.Raw)
	assert.Equal(t, uint8(0x1), ins.Class)
	assert.Equal(t, uint8(0x2), ins.X)
	assert.Equal(t, uint8(0x3), ins.Y)
	assert.Equal(t, uint8(0x4), ins.N)
	assert.Equal(t, uint8(0x34), ins.KK)
	assert.Equal(t, uint16(0x234), ins.NNN)
}

func TestDecode_Total(t *testing.T) {
	for word := 0; word <= 0xFFFF; word++ {
		ins := Decode(uint16(word))
		if uint16(ins.Class)<<12|ins.NNN != uint16(word) {
			t.Fatalf("word %04X: fields do not reassemble", word)
		}
		if uint16(ins.X)<<8|uint16(ins.KK) != ins.NNN {
			t.Fatalf("word %04X: X/KK do not match NNN", word)
		}
		if ins.Y<<4|ins.N != ins.KK {
			t.Fatalf("word %04X: Y/N do not match KK", word)
		}
	}
}

func TestDecode_Ops(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected Op
	}{
		{"clear display", 0x00E0, OpCls},
		{"return", 0x00EE, OpRet},
		{"machine call", 0x0123, OpSys},
		{"jump", 0x1200, OpJp},
		{"call", 0x2300, OpCall},
		{"skip equal immediate", 0x3A12, OpSeImm},
		{"skip not equal immediate", 0x4A12, OpSneImm},
		{"skip registers equal", 0x5AB0, OpSeReg},
		{"load immediate", 0x6A12, OpLdImm},
		{"add immediate", 0x7A12, OpAddImm},
		{"register copy", 0x8AB0, OpLdReg},
		{"or", 0x8AB1, OpOr},
		{"and", 0x8AB2, OpAnd},
		{"xor", 0x8AB3, OpXor},
		{"add with carry", 0x8AB4, OpAddReg},
		{"subtract", 0x8AB5, OpSub},
		{"shift right", 0x8AB6, OpShr},
		{"reverse subtract", 0x8AB7, OpSubn},
		{"shift left", 0x8ABE, OpShl},
		{"undefined alu", 0x8AB9, OpInvalid},
		{"skip registers not equal", 0x9AB0, OpSneReg},
		{"load address", 0xA123, OpLdI},
		{"jump with offset", 0xB123, OpJpV0},
		{"random", 0xCA0F, OpRnd},
		{"draw", 0xDAB5, OpDrw},
		{"skip key pressed", 0xEA9E, OpSkp},
		{"skip key not pressed", 0xEAA1, OpSknp},
		{"undefined key", 0xEA00, OpInvalid},
		{"read delay", 0xFA07, OpLdVxDT},
		{"wait key", 0xFA0A, OpLdVxK},
		{"set delay", 0xFA15, OpLdDTVx},
		{"set sound", 0xFA18, OpLdSTVx},
		{"add address", 0xFA1E, OpAddI},
		{"glyph address", 0xFA29, OpLdF},
		{"bcd", 0xFA33, OpLdB},
		{"store registers", 0xFA55, OpStore},
		{"load registers", 0xFA65, OpLoad},
		{"undefined misc", 0xFAFF, OpInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).Op)
		})
	}
}

func TestInstruction_Implemented(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected bool
	}{
		{"load immediate", 0x6008, true},
		{"draw", 0xD125, true},
		{"store registers", 0xF455, true},
		{"read delay", 0xF007, true},
		{"machine call", 0x0123, false},
		{"skip key pressed", 0xE09E, false},
		{"skip key not pressed", 0xE0A1, false},
		{"wait key", 0xF00A, false},
		{"glyph address", 0xF029, false},
		{"undefined alu", 0x800F, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).Implemented())
		})
	}
}

func TestFromBytes(t *testing.T) {
	ins, ok := FromBytes([]byte{0x60, 0x08})
	assert.True(t, ok)
	assert.Equal(t, OpLdImm, ins.Op)
	assert.Equal(t, uint8(0x08), ins.KK)

	_, ok = FromBytes([]byte{0x60})
	assert.False(t, ok)

	_, ok = FromBytes(nil)
	assert.False(t, ok)
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"clear display", 0x00E0, "cls"},
		{"jump", 0x1234, "jp $234"},
		{"jump with offset", 0xB234, "jp V0, $234"},
		{"call", 0x2300, "call $300"},
		{"skip equal immediate", 0x3234, "se V2, $34"},
		{"skip registers equal", 0x5230, "se V2, V3"},
		{"skip not equal immediate", 0x4234, "sne V2, $34"},
		{"skip registers not equal", 0x9230, "sne V2, V3"},
		{"load immediate", 0x6234, "ld V2, $34"},
		{"register copy", 0x8230, "ld V2, V3"},
		{"load address", 0xA234, "ld I, $234"},
		{"add immediate", 0x7234, "add V2, $34"},
		{"add registers", 0x8234, "add V2, V3"},
		{"or", 0x8231, "or V2, V3"},
		{"and", 0x8232, "and V2, V3"},
		{"xor", 0x8233, "xor V2, V3"},
		{"subtract", 0x8235, "sub V2, V3"},
		{"reverse subtract", 0x8237, "subn V2, V3"},
		{"random", 0xC234, "rnd V2, $34"},
		{"draw", 0xD235, "drw V2, V3, $5"},
		{"undefined alu", 0x823F, ".word $823F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).String())
		})
	}
}

func TestInstruction_Name(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"clear display", 0x00E0, chip8.ClsName},
		{"return", 0x00EE, chip8.RetName},
		{"jump", 0x1200, chip8.JpName},
		{"call", 0x2200, chip8.CallName},
		{"load address", 0xA200, chip8.LdName},
		{"draw", 0xD015, chip8.DrwName},
		{"shift right", 0x8016, chip8.ShrName},
		{"shift left", 0x801E, chip8.ShlName},
		{"skip key pressed", 0xE09E, chip8.SkpName},
		{"undefined", 0xFFFF, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).Name())
		})
	}
}

func TestOpcodeTableCoverage(t *testing.T) {
	// every class nibble has at least one table entry
	for nibble := range 16 {
		opcodes := chip8.Opcodes[nibble]
		assert.NotEmpty(t, opcodes, "Expected opcodes for nibble %X", nibble)

		for _, op := range opcodes {
			assert.NotNil(t, op.Instruction)
			assert.NotEmpty(t, Decode(op.Info.Value).Name())
		}
	}
}
