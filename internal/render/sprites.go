package render

import (
	"fmt"
	"math"

	"raymarch/internal/graphics"
	"raymarch/internal/mathutil"
	"raymarch/internal/world"
)

// spriteScreenSize is the billboard edge in pixels: frame height over
// distance, capped at MaxSpriteSize. The cap is taken before converting to
// int so a zero distance cannot overflow.
func spriteScreenSize(frameHeight int, distance float64) int {
	size := float64(MaxSpriteSize)
	if distance > 0 {
		size = min(size, float64(frameHeight)/distance)
	}
	return int(size)
}

// spriteBearing is the angle from the player's facing to the sprite, in
// (-π, π].
func spriteBearing(p world.Player, sp world.Sprite) float64 {
	return mathutil.NormalizeAngle(math.Atan2(sp.Y-p.Y, sp.X-p.X) - p.Direction)
}

// drawSprite composites one billboard into the 3D half. Pixels behind a
// nearer wall column, outside the 3D half, or with alpha <= 128 are skipped.
func drawSprite(fb *graphics.FrameBuffer, sp world.Sprite, depth []float64, p world.Player, atlas *graphics.TextureAtlas) {
	if sp.Distance < 0 || math.IsNaN(sp.Distance) {
		panic(fmt.Sprintf("render: sprite at (%v, %v) has invalid distance %v", sp.X, sp.Y, sp.Distance))
	}
	half := fb.Width() / 2
	frameH := fb.Height()
	texSize := atlas.TextureSize()

	size := spriteScreenSize(frameH, sp.Distance)
	hOffset := int(spriteBearing(p, sp)/p.FOV*float64(half) + float64(half/2) - float64(texSize/2))
	vOffset := frameH/2 - size/2

	for i := 0; i < size; i++ {
		col := hOffset + i
		if col < 0 || col >= half {
			continue
		}
		if depth[col] < sp.Distance {
			continue
		}
		texX := i * texSize / size
		for j := 0; j < size; j++ {
			row := vOffset + j
			if row < 0 || row >= frameH {
				continue
			}
			c := atlas.Pixel(texX, j*texSize/size, sp.TextureID)
			if graphics.Alpha(c) > alphaThreshold {
				fb.SetPixel(half+col, row, c)
			}
		}
	}
}
