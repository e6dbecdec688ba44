// Package render draws one frame of the ray-marched first-person view.
//
// The left half of the framebuffer holds a top-down minimap with the ray
// traces, the right half the projected walls and billboard sprites.
package render

import (
	"slices"

	"raymarch/internal/graphics"
	"raymarch/internal/threading/monitoring"
	"raymarch/internal/threading/rendering"
	"raymarch/internal/world"
)

const (
	StepSize      = 0.01   // ray march increment in map units
	MaxDistance   = 20.0   // ray march range in map units
	DepthSentinel = 1000.0 // depth of a column whose ray hit nothing
	MaxSpriteSize = 1000   // on-screen sprite edge cap in pixels

	// alphaThreshold is the largest sprite alpha still treated as transparent.
	alphaThreshold = 128

	// minWallDistance guards the column height division.
	minWallDistance = 1e-6
)

var (
	backgroundColor = graphics.White
	traceColor      = graphics.Gray
	markerColor     = graphics.Red
)

// Scene is everything one frame is rendered from. The renderer only reads it.
type Scene struct {
	Map         *world.Map
	Player      world.Player
	Sprites     []world.Sprite
	Walls       *graphics.TextureAtlas
	SpriteAtlas *graphics.TextureAtlas
}

// Frame reports what a Render call computed besides the pixels.
type Frame struct {
	Depth       []float64   // per 3D column, DepthSentinel when nothing was hit
	Columns     []ColumnHit // per 3D column
	SpriteOrder []int       // indices into Scene.Sprites in drawing order
}

// Options configure a Renderer.
type Options struct {
	// Workers > 0 casts columns on that many goroutines, < 0 on one per
	// CPU, 0 on the calling goroutine. Output is identical either way.
	Workers int
	// Monitor, when set, receives wall pass and sprite pass timings.
	Monitor *monitoring.PerformanceMonitor
}

// Renderer turns a Scene into framebuffer pixels.
type Renderer struct {
	caster     *rendering.ParallelRenderer
	ownsCaster bool
	monitor    *monitoring.PerformanceMonitor
	scratch    []uint32
}

// New creates a renderer. Call Close to release its workers.
func New(opts Options) *Renderer {
	r := &Renderer{monitor: opts.Monitor}
	if opts.Workers != 0 {
		r.caster = rendering.NewParallelRenderer(opts.Workers)
		r.ownsCaster = true
	}
	return r
}

// NewWithCaster creates a renderer that shares an existing column caster,
// which stays owned by the caller.
func NewWithCaster(caster *rendering.ParallelRenderer, monitor *monitoring.PerformanceMonitor) *Renderer {
	return &Renderer{caster: caster, monitor: monitor}
}

// Close stops the worker pool if the renderer created it.
func (r *Renderer) Close() {
	if r.caster != nil && r.ownsCaster {
		r.caster.Stop()
	}
	r.caster = nil
}

// Render draws s into fb. The same inputs always produce the same pixels.
func (r *Renderer) Render(fb *graphics.FrameBuffer, s Scene) *Frame {
	fb.Clear(backgroundColor)

	half := fb.Width() / 2
	frame := &Frame{
		Depth:   make([]float64, half),
		Columns: make([]ColumnHit, half),
	}
	for i := range frame.Depth {
		frame.Depth[i] = DepthSentinel
	}

	cellW := fb.Width() / (s.Map.Width() * 2)
	cellH := fb.Height() / s.Map.Height()

	var timer *monitoring.RaycastTimer
	if r.monitor != nil {
		timer = r.monitor.StartRaycast()
	}
	r.castColumns(s, frame)
	r.drawWalls(fb, s, frame, cellW, cellH)
	if timer != nil {
		timer.EndRaycast()
	}

	drawMinimap(fb, s, cellW, cellH)

	frame.SpriteOrder = spriteOrder(s.Sprites)
	drawSprites := func() {
		for _, idx := range frame.SpriteOrder {
			drawSprite(fb, s.Sprites[idx], frame.Depth, s.Player, s.SpriteAtlas)
		}
	}
	if r.monitor != nil {
		r.monitor.ProfiledFunction("sprite_render", drawSprites)
	} else {
		drawSprites()
	}
	return frame
}

// spriteOrder returns sprite indices farthest first. Ties keep input order.
func spriteOrder(sprites []world.Sprite) []int {
	order := make([]int, len(sprites))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return world.CompareByDistanceDesc(sprites[a], sprites[b])
	})
	return order
}
