package graphics

// Colors are packed as 32-bit values with R in bits 0-7, G in 8-15,
// B in 16-23 and A in 24-31. In memory (little endian) that is RGBA byte
// order, which is what image.NRGBA and ebiten expect.

// PackColor packs four channels into a color.
func PackColor(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) uint32 {
	return PackColor(r, g, b, 255)
}

// UnpackColor splits a packed color into its channels.
func UnpackColor(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha channel of a packed color.
func Alpha(c uint32) uint8 {
	return uint8(c >> 24)
}

// Palette used by the renderer and placeholders.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
	Red   = RGB(255, 0, 0)
	Gray  = RGB(190, 190, 190)
)
