// Package keypad implements the state of the 16 key hexadecimal keypad and
// its mapping to host keyboard keys.
package keypad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/input"
)

// Count is the number of keys of the keypad.
const Count = 16

// ErrInvalidKey is returned for key codes above 0xF.
var ErrInvalidKey = errors.New("invalid key")

// Layout maps every keypad key to a host key. The keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// is placed on the left block of a QWERTY keyboard starting at 1.
var Layout = [Count]input.Key{
	0x0: input.X,
	0x1: input.Key1,
	0x2: input.Key2,
	0x3: input.Key3,
	0x4: input.Q,
	0x5: input.W,
	0x6: input.E,
	0x7: input.A,
	0x8: input.S,
	0x9: input.D,
	0xA: input.Z,
	0xB: input.C,
	0xC: input.Key4,
	0xD: input.R,
	0xE: input.F,
	0xF: input.V,
}

// Lookup returns the keypad key that a host key is mapped to.
func Lookup(host input.Key) (byte, bool) {
	for key, mapped := range Layout {
		if mapped == host {
			return byte(key), true
		}
	}
	return 0, false
}

// Keypad holds which keys are currently held.
type Keypad struct {
	pressed [Count]bool
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// Set updates the state of a key.
func (k *Keypad) Set(key byte, pressed bool) error {
	if int(key) >= Count {
		return fmt.Errorf("%w: $%02X", ErrInvalidKey, key)
	}
	k.pressed[key] = pressed
	return nil
}

// Pressed returns whether the key is held. Invalid keys are never held.
func (k *Keypad) Pressed(key byte) bool {
	return int(key) < Count && k.pressed[key]
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.pressed = [Count]bool{}
}

// String returns the held keys as hexadecimal digits, for example "1A".
func (k *Keypad) String() string {
	var sb strings.Builder
	for key, pressed := range k.pressed {
		if pressed {
			fmt.Fprintf(&sb, "%X", key)
		}
	}
	return sb.String()
}
