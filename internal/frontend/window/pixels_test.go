package window

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/assert"
)

func TestPixels(t *testing.T) {
	var grid display.Grid
	grid[0][1] = true
	grid[display.Height-1][display.Width-1] = true

	on := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	off := color.RGBA{R: 5, G: 6, B: 7, A: 8}
	pixels := Pixels(grid, on, off)

	assert.Len(t, pixels, display.Width*display.Height*4)
	assert.Equal(t, [4]byte{5, 6, 7, 8}, [4]byte(pixels[0:4]))
	assert.Equal(t, [4]byte{1, 2, 3, 4}, [4]byte(pixels[4:8]))
	assert.Equal(t, [4]byte{1, 2, 3, 4}, [4]byte(pixels[len(pixels)-4:]))
}
