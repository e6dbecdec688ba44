package graphics

import (
	"fmt"
	"image"
)

// FrameBuffer is a row-major pixel surface with the origin at the top left.
type FrameBuffer struct {
	width  int
	height int
	pixels []uint32
}

// NewFrameBuffer allocates a width x height buffer filled with c.
func NewFrameBuffer(width, height int, c uint32) *FrameBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("graphics: invalid framebuffer size %dx%d", width, height))
	}
	fb := &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
	fb.Clear(c)
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Pixels exposes the raw buffer for output sinks. Callers must not resize it.
func (fb *FrameBuffer) Pixels() []uint32 { return fb.pixels }

// SetPixel writes one pixel. Writing outside the buffer is a logic error.
func (fb *FrameBuffer) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		panic(fmt.Sprintf("graphics: SetPixel(%d, %d) outside %dx%d framebuffer", x, y, fb.width, fb.height))
	}
	fb.pixels[x+y*fb.width] = c
}

// At reads one pixel, with the same bounds contract as SetPixel.
func (fb *FrameBuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		panic(fmt.Sprintf("graphics: At(%d, %d) outside %dx%d framebuffer", x, y, fb.width, fb.height))
	}
	return fb.pixels[x+y*fb.width]
}

// DrawRectangle fills a w x h rectangle at (x, y). Parts outside the
// buffer, including negative origins, are dropped.
func (fb *FrameBuffer) DrawRectangle(x, y, w, h int, c uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.width), min(y+h, fb.height)
	for cy := y0; cy < y1; cy++ {
		row := fb.pixels[cy*fb.width : (cy+1)*fb.width]
		for cx := x0; cx < x1; cx++ {
			row[cx] = c
		}
	}
}

// Clear fills the whole buffer with c.
func (fb *FrameBuffer) Clear(c uint32) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// RGBABytes writes the buffer as opaque RGBA bytes into dst, growing it if
// needed, and returns it. Alpha is forced to 255 since sinks have no use
// for it.
func (fb *FrameBuffer) RGBABytes(dst []byte) []byte {
	n := len(fb.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range fb.pixels {
		dst[i*4] = uint8(c)
		dst[i*4+1] = uint8(c >> 8)
		dst[i*4+2] = uint8(c >> 16)
		dst[i*4+3] = 255
	}
	return dst
}

// Image returns an opaque copy of the buffer as an image.NRGBA.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))
	img.Pix = fb.RGBABytes(img.Pix)
	return img
}
