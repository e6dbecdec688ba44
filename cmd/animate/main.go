// Command animate renders a full turn of the player on the spot and writes
// every frame as a numbered image.
package main

import (
	"flag"
	"log"
	"math"
	"path/filepath"

	"raymarch/internal/config"
	"raymarch/internal/game"
	"raymarch/internal/graphics"
	"raymarch/internal/output"
	"raymarch/internal/render"
	"raymarch/internal/threading"
)

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	frames := flag.Int("frames", 0, "frame count, 0 uses output.frames from the config")
	format := flag.String("format", "", "ppm, png or webp, empty uses output.format")
	outDir := flag.String("out", "", "output directory, empty uses output.dir")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *frames > 0 {
		cfg.Output.Frames = *frames
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	if err := animate(cfg); err != nil {
		log.Fatal(err)
	}
}

func animate(cfg *config.Config) error {
	state, err := game.NewGameState(cfg)
	if err != nil {
		return err
	}
	writer, err := output.NewWriter(cfg.Output.Format, cfg.GetOutputScale())
	if err != nil {
		return err
	}

	tc := threading.NewThreadingComponents(cfg.GetRenderWorkers())
	defer tc.Shutdown()
	renderer := render.NewWithCaster(tc.ParallelRenderer, tc.PerformanceMonitor)
	defer renderer.Close()

	fb := graphics.NewFrameBuffer(cfg.GetScreenWidth(), cfg.GetScreenHeight(), graphics.White)
	turn := 2 * math.Pi / float64(cfg.Output.Frames)
	for frame := 0; frame < cfg.Output.Frames; frame++ {
		timer := tc.PerformanceMonitor.StartFrame()
		state.Player.Direction += turn
		renderer.Render(fb, state.Scene())
		timer.EndFrame()

		path := filepath.Join(cfg.Output.Dir, writer.FrameName(frame))
		if err := writer.WriteFile(path, fb); err != nil {
			return err
		}
		if (frame+1)%60 == 0 || frame+1 == cfg.Output.Frames {
			log.Printf("Rendered %d/%d frames (%s)", frame+1, cfg.Output.Frames, tc.PerformanceMonitor.GetCurrentMetrics())
		}
	}
	return nil
}
