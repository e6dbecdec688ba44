package render

import (
	"fmt"

	"raymarch/internal/graphics"
)

// spriteMarkerSize is the edge of the square drawn for each sprite.
const spriteMarkerSize = 6

// drawMinimap fills each wall cell with the top-left pixel of its texture
// and marks every sprite with a small red square.
func drawMinimap(fb *graphics.FrameBuffer, s Scene, cellW, cellH int) {
	m := s.Map
	for j := 0; j < m.Height(); j++ {
		for i := 0; i < m.Width(); i++ {
			if m.IsEmpty(i, j) {
				continue
			}
			id := int(m.Get(i, j))
			if id >= s.Walls.TextureCount() {
				panic(fmt.Sprintf("render: tile %d at (%d, %d) has no wall texture", id, i, j))
			}
			fb.DrawRectangle(i*cellW, j*cellH, cellW, cellH, s.Walls.Pixel(0, 0, id))
		}
	}

	offset := spriteMarkerSize / 2
	for _, sp := range s.Sprites {
		fb.DrawRectangle(int(sp.X*float64(cellW)-float64(offset)), int(sp.Y*float64(cellH)-float64(offset)),
			spriteMarkerSize, spriteMarkerSize, markerColor)
	}
}
