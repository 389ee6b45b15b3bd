// Package display implements the monochrome CHIP-8 framebuffer.
package display

import "strings"

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32

	// SpriteWidth is the fixed width of a sprite row in pixels.
	SpriteWidth = 8
)

// Grid is a snapshot of the pixel state, indexed as [y][x].
type Grid [Height][Width]bool

// Framebuffer is the 64x32 pixel display.
type Framebuffer struct {
	pixels Grid
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	f.pixels = Grid{}
}

// DrawSprite composites a sprite onto the framebuffer using XOR. Every byte
// of rows is one sprite row, drawn with its most significant bit at the
// leftmost column. Coordinates wrap around both axes independently.
// It returns true if any set sprite bit hit a pixel that was already on.
func (f *Framebuffer) DrawSprite(originX, originY byte, rows []byte) bool {
	collided := false

	for row, b := range rows {
		y := (int(originY) + row) % Height
		for bit := range SpriteWidth {
			if b&(0x80>>bit) == 0 {
				continue
			}

			x := (int(originX) + bit) % Width
			if f.pixels[y][x] {
				collided = true
			}
			f.pixels[y][x] = !f.pixels[y][x]
		}
	}

	return collided
}

// Pixel returns the state of the pixel at the given coordinates, which wrap
// around like sprite coordinates.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[wrap(y, Height)][wrap(x, Width)]
}

// Snapshot returns a copy of the current pixel state.
func (f *Framebuffer) Snapshot() Grid {
	return f.pixels
}

// String renders the framebuffer as text, one line per row, using '#' for
// set pixels and '.' for cleared ones.
func (f *Framebuffer) String() string {
	return f.pixels.String()
}

// String renders the grid as text, one line per row.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range Height {
		for x := range Width {
			if g[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Count returns the number of set pixels.
func (g Grid) Count() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g[y][x] {
				n++
			}
		}
	}
	return n
}

func wrap(value, limit int) int {
	value %= limit
	if value < 0 {
		value += limit
	}
	return value
}
