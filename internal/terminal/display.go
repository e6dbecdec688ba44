// Package terminal shows frames in a text terminal through tcell and turns
// key presses into game controls.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"raymarch/internal/graphics"
)

// upperHalf draws the top pixel in the foreground and the bottom one in
// the background, giving two pixel rows per text row.
const upperHalf = '▀'

// Screen is the part of tcell.Screen the display draws to.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Display draws framebuffers onto a screen, scaled nearest-neighbor down to
// its cell grid.
type Display struct {
	screen Screen
}

// NewDisplay draws onto screen.
func NewDisplay(screen Screen) *Display {
	return &Display{screen: screen}
}

// Draw samples fb and shows it.
func (d *Display) Draw(fb *graphics.FrameBuffer) {
	cols, rows := d.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := sampleCell(fb, x, y, cols, rows)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			d.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	d.screen.Show()
}

// sampleCell returns the framebuffer pixels shown in the upper and lower
// half of text cell (x, y) on a cols x rows grid.
func sampleCell(fb *graphics.FrameBuffer, x, y, cols, rows int) (top, bottom uint32) {
	px := x * fb.Width() / cols
	subRows := rows * 2
	top = fb.At(px, (2*y)*fb.Height()/subRows)
	bottom = fb.At(px, (2*y+1)*fb.Height()/subRows)
	return top, bottom
}

func cellColor(c uint32) tcell.Color {
	r, g, b, _ := graphics.UnpackColor(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
