// Package window implements a windowed frontend using ebiten.
package window

import (
	"image/color"

	"github.com/retroenv/retrochip8/internal/display"
)

var (
	// PixelOn is the color of a set pixel.
	PixelOn = color.RGBA{R: 0xE0, G: 0xF0, B: 0xD0, A: 0xFF}
	// PixelOff is the color of a cleared pixel.
	PixelOff = color.RGBA{R: 0x10, G: 0x20, B: 0x18, A: 0xFF}
)

// Pixels converts the grid to RGBA pixel data of display.Width x
// display.Height pixels.
func Pixels(grid display.Grid, on, off color.RGBA) []byte {
	pixels := make([]byte, 0, display.Width*display.Height*4)
	for y := range display.Height {
		for x := range display.Width {
			c := off
			if grid[y][x] {
				c = on
			}
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}
	return pixels
}
