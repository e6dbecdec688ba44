package render

import (
	"fmt"
	"math"

	"raymarch/internal/graphics"
	"raymarch/internal/world"
)

// ColumnHit is the outcome of marching one ray.
type ColumnHit struct {
	Hit      bool
	Steps    int     // in-map positions visited, the hit included
	T        float64 // distance along the ray at the hit
	Angle    float64 // ray angle in radians
	X, Y     float64 // hit position in map units
	Tile     world.TileID
	Distance float64 // fisheye-corrected depth, DepthSentinel on a miss
}

// rayAngle spreads the field of view evenly across columns 3D columns.
func rayAngle(p world.Player, col, columns int) float64 {
	return p.Direction - p.FOV/2 + p.FOV*float64(col)/float64(columns)
}

// marchRay steps along angle from (px, py) until it enters a wall, leaves
// the map or runs out of range. A ray that leaves the map never re-enters
// it, so that ends the march like running out of range.
func marchRay(m *world.Map, px, py, angle float64) ColumnHit {
	h := ColumnHit{Angle: angle, Tile: world.EmptyTile, Distance: DepthSentinel}
	cos, sin := math.Cos(angle), math.Sin(angle)
	for t := 0.0; t < MaxDistance; t += StepSize {
		x := px + t*cos
		y := py + t*sin
		if !m.Contains(x, y) {
			return h
		}
		h.Steps++
		if m.IsEmpty(int(x), int(y)) {
			continue
		}
		h.Hit = true
		h.T, h.X, h.Y = t, x, y
		h.Tile = m.Get(int(x), int(y))
		return h
	}
	return h
}

// traceRay revisits the first steps positions of a march, accumulating t
// exactly as marchRay does.
func traceRay(px, py, angle float64, steps int, visit func(x, y float64)) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	t := 0.0
	for n := 0; n < steps; n++ {
		visit(px+t*cos, py+t*sin)
		t += StepSize
	}
}

// castColumns marches one ray per 3D column and records its depth. Each
// call writes only its own column's slots, so columns may run in parallel.
func (r *Renderer) castColumns(s Scene, frame *Frame) {
	columns := len(frame.Columns)
	cast := func(col int) {
		h := marchRay(s.Map, s.Player.X, s.Player.Y, rayAngle(s.Player, col, columns))
		if h.Hit {
			h.Distance = h.T * math.Cos(h.Angle-s.Player.Direction)
			frame.Depth[col] = h.Distance
		}
		frame.Columns[col] = h
	}
	if r.caster != nil {
		r.caster.CastColumns(columns, cast)
		return
	}
	for col := 0; col < columns; col++ {
		cast(col)
	}
}

// drawWalls paints the minimap ray traces and the textured wall strips in
// column order.
func (r *Renderer) drawWalls(fb *graphics.FrameBuffer, s Scene, frame *Frame, cellW, cellH int) {
	half := len(frame.Columns)
	fw, fh := float64(cellW), float64(cellH)
	plot := func(x, y float64) {
		fb.SetPixel(int(x*fw), int(y*fh), traceColor)
	}
	for col, h := range frame.Columns {
		traceRay(s.Player.X, s.Player.Y, h.Angle, h.Steps, plot)
		if h.Hit {
			r.drawWallStrip(fb, s.Walls, col+half, h)
		}
	}
}

// drawWallStrip blits the texture column for one hit, vertically centered
// on the horizon, clipping rows outside the framebuffer.
func (r *Renderer) drawWallStrip(fb *graphics.FrameBuffer, walls *graphics.TextureAtlas, pixX int, h ColumnHit) {
	if int(h.Tile) >= walls.TextureCount() {
		panic(fmt.Sprintf("render: tile %d has no wall texture (atlas holds %d)", h.Tile, walls.TextureCount()))
	}
	if h.Distance < minWallDistance {
		return
	}
	frameH := fb.Height()
	columnHeight := int(float64(frameH) / h.Distance)
	top := frameH/2 - columnHeight/2 // screen row of texture row 0

	texX := wallTextureX(h.X, h.Y, walls.TextureSize())
	from, to := -top, frameH-top // visible window of the column
	r.scratch = walls.AppendScaledColumnRows(r.scratch[:0], int(h.Tile), texX, columnHeight, from, to)
	start := max(from, 0)
	for k, c := range r.scratch {
		fb.SetPixel(pixX, top+start+k, c)
	}
}

// wallTextureX picks the texture column for a hit at map position (x, y).
func wallTextureX(x, y float64, textureSize int) int {
	return textureXFromOffsets(x-math.Floor(x+0.5), y-math.Floor(y+0.5), textureSize)
}

// textureXFromOffsets maps the hit's offset from the nearest cell center to
// a texture column. The larger offset names the grid line that was crossed:
// hitY when the ray crossed a horizontal line, hitX otherwise (ties go to
// hitX). Negative columns wrap by adding the texture size.
func textureXFromOffsets(hitX, hitY float64, textureSize int) int {
	tex := int(hitX * float64(textureSize))
	if math.Abs(hitY) > math.Abs(hitX) {
		tex = int(hitY * float64(textureSize))
	}
	if tex < 0 {
		tex += textureSize
	}
	if tex < 0 || tex >= textureSize {
		panic(fmt.Sprintf("render: wall texture column %d outside [0, %d) for offsets (%v, %v)",
			tex, textureSize, hitX, hitY))
	}
	return tex
}
