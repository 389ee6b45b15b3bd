//go:build !headless

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/input"
)

// ebitenKeys maps the host keys of the keypad layout to ebiten keys.
var ebitenKeys = map[input.Key]ebiten.Key{
	input.Key1: ebiten.KeyDigit1,
	input.Key2: ebiten.KeyDigit2,
	input.Key3: ebiten.KeyDigit3,
	input.Key4: ebiten.KeyDigit4,
	input.Q:    ebiten.KeyQ,
	input.W:    ebiten.KeyW,
	input.E:    ebiten.KeyE,
	input.R:    ebiten.KeyR,
	input.A:    ebiten.KeyA,
	input.S:    ebiten.KeyS,
	input.D:    ebiten.KeyD,
	input.F:    ebiten.KeyF,
	input.Z:    ebiten.KeyZ,
	input.X:    ebiten.KeyX,
	input.C:    ebiten.KeyC,
	input.V:    ebiten.KeyV,
}
