package keypad

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/input"
)

func TestSet(t *testing.T) {
	k := New()
	assert.Equal(t, "", k.String())

	assert.NoError(t, k.Set(0x1, true))
	assert.NoError(t, k.Set(0xA, true))
	assert.True(t, k.Pressed(0x1))
	assert.True(t, k.Pressed(0xA))
	assert.False(t, k.Pressed(0x2))
	assert.Equal(t, "1A", k.String())

	assert.NoError(t, k.Set(0x1, false))
	assert.False(t, k.Pressed(0x1))
	assert.Equal(t, "A", k.String())

	k.Reset()
	assert.Equal(t, "", k.String())
}

func TestSet_InvalidKey(t *testing.T) {
	k := New()

	err := k.Set(0x10, true)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.False(t, k.Pressed(0x10))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		host  input.Key
		key   byte
		found bool
	}{
		{"digit 1", input.Key1, 0x1, true},
		{"digit 4", input.Key4, 0xC, true},
		{"letter x", input.X, 0x0, true},
		{"letter v", input.V, 0xF, true},
		{"unmapped", input.P, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, found := Lookup(tt.host)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestLayout_Unique(t *testing.T) {
	for key, host := range Layout {
		mapped, ok := Lookup(host)
		assert.True(t, ok)
		assert.Equal(t, byte(key), mapped)
	}
}
