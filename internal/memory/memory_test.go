package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew_Font(t *testing.T) {
	m := New()

	for i, b := range Font {
		value, err := m.ReadData(uint16(FontAddress + i))
		assert.NoError(t, err)
		assert.Equal(t, b, value)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		wantErr bool
	}{
		{"program start", ProgramStart, false},
		{"last address", Size - 1, false},
		{"reserved area", ProgramStart - 1, true},
		{"zero", 0x000, true},
		{"capacity", Size, true},
		{"far out", 0xFFFF, true},
	}

	m := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Read(tt.address)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrOutOfBounds))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWord(t *testing.T) {
	m := New()
	assert.Equal(t, 2, m.Load([]byte{0x60, 0x08}))

	word, err := m.Word(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x6008), word)

	_, err = m.Word(Size - 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestReadData(t *testing.T) {
	m := New()

	value, err := m.ReadData(0x000)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), value)

	_, err = m.ReadData(Size)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestWrite(t *testing.T) {
	m := New()

	assert.NoError(t, m.Write(0x100, 0xAB))
	value, err := m.ReadData(0x100)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), value)

	assert.NoError(t, m.Write(Size-1, 0xCD))
	value, err = m.Read(Size - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xCD), value)

	err = m.Write(Size, 0x01)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestWriteBytes(t *testing.T) {
	m := New()

	assert.NoError(t, m.WriteBytes(Size-3, []byte{1, 2, 3}))
	b, err := m.Slice(Size-3, 3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	err = m.WriteBytes(Size-2, []byte{4, 5, 6})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	b, err = m.Slice(Size-3, 3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestLoad_Truncates(t *testing.T) {
	m := New()
	image := make([]byte, MaxProgramSize+16)
	for i := range image {
		image[i] = byte(i)
	}

	n := m.Load(image)
	assert.Equal(t, MaxProgramSize, n)

	value, err := m.Read(Size - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte((MaxProgramSize-1)&0xFF), value)
}

func TestSlice(t *testing.T) {
	m := New()
	m.Load([]byte{1, 2, 3})

	b, err := m.Slice(ProgramStart, 3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = m.Slice(Size-2, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestBytes(t *testing.T) {
	m := New()
	m.Load([]byte{0xAA})

	b := m.Bytes()
	assert.Len(t, b, Size)
	assert.Equal(t, byte(0xAA), b[ProgramStart])

	b[ProgramStart] = 0x00
	value, err := m.Read(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAA), value)
}

func TestReset(t *testing.T) {
	m := New()
	m.Load([]byte{0xAA})
	assert.NoError(t, m.Write(0x000, 0x00))

	m.Reset()

	value, err := m.Read(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), value)
	value, err = m.ReadData(0x000)
	assert.NoError(t, err)
	assert.Equal(t, Font[0], value)
}
