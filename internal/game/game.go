// Package game runs the interactive raycaster: it owns the game state and
// advances it one tick at a time through input, physics and render.
package game

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"raymarch/internal/config"
	"raymarch/internal/graphics"
	"raymarch/internal/mathutil"
	"raymarch/internal/output"
	"raymarch/internal/render"
	"raymarch/internal/threading"
)

// ErrQuit is returned by Tick once the player asked to leave.
var ErrQuit = errors.New("quit requested")

// Controls is one tick of sampled input. Turn and Walk are -1, 0 or 1.
type Controls struct {
	Turn       int
	Walk       int
	Quit       bool
	Screenshot bool
}

// Game drives a GameState through the fixed tick pipeline and keeps the
// last rendered frame.
type Game struct {
	state     *GameState
	movement  Movement
	fb        *graphics.FrameBuffer
	renderer  *render.Renderer
	threading *threading.ThreadingComponents
	lastFrame *render.Frame

	writer      *output.Writer
	outputDir   string
	shots       int
	logInterval int
	minFPS      float64
}

// NewGame creates a game for state sized and tuned by cfg. Call Close when
// done to stop the render workers.
func NewGame(cfg *config.Config, state *GameState) (*Game, error) {
	writer, err := output.NewWriter(cfg.Output.Format, cfg.GetOutputScale())
	if err != nil {
		return nil, err
	}
	tc := threading.NewThreadingComponents(cfg.GetRenderWorkers())
	g := &Game{
		state:       state,
		movement:    MovementFromConfig(cfg),
		fb:          graphics.NewFrameBuffer(cfg.GetScreenWidth(), cfg.GetScreenHeight(), graphics.White),
		renderer:    render.NewWithCaster(tc.ParallelRenderer, tc.PerformanceMonitor),
		threading:   tc,
		writer:      writer,
		outputDir:   cfg.Output.Dir,
		logInterval: cfg.Performance.LogInterval,
		minFPS:      cfg.Performance.MinFPS,
	}
	g.lastFrame = g.renderer.Render(g.fb, state.Scene())
	return g, nil
}

// Tick runs one input, physics, render pass. It returns ErrQuit without
// touching the state when c.Quit is set.
func (g *Game) Tick(c Controls) error {
	if c.Quit {
		return ErrQuit
	}
	frameTimer := g.threading.PerformanceMonitor.StartFrame()

	// input
	g.state.Player.Turn = mathutil.IntClamp(c.Turn, -1, 1)
	g.state.Player.Walk = mathutil.IntClamp(c.Walk, -1, 1)

	// physics
	Advance(g.state, g.movement)

	// render
	g.lastFrame = g.renderer.Render(g.fb, g.state.Scene())
	frameTimer.EndFrame()

	if c.Screenshot {
		if _, err := g.Screenshot(); err != nil {
			log.Printf("Warning: screenshot failed: %v", err)
		}
	}
	g.reportPerformance()
	return nil
}

// Screenshot writes the current frame into the output directory and
// returns its path.
func (g *Game) Screenshot() (string, error) {
	path := filepath.Join(g.outputDir, fmt.Sprintf("screenshot_%s", g.writer.FrameName(g.shots)))
	if err := g.writer.WriteFile(path, g.fb); err != nil {
		return "", err
	}
	g.shots++
	log.Printf("Saved screenshot %s", path)
	return path, nil
}

// State exposes the game state.
func (g *Game) State() *GameState { return g.state }

// FrameBuffer is the most recently rendered frame.
func (g *Game) FrameBuffer() *graphics.FrameBuffer { return g.fb }

// LastFrame reports the depth buffer and sprite order of the last render.
func (g *Game) LastFrame() *render.Frame { return g.lastFrame }

// Close stops the render workers.
func (g *Game) Close() {
	g.renderer.Close()
	g.threading.Shutdown()
}
