// Command termview plays the raycaster inside a text terminal.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"raymarch/internal/config"
	"raymarch/internal/game"
	"raymarch/internal/terminal"
)

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	logPath := flag.String("log", "termview.log", "log file, the terminal is taken by the view")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	state, err := game.NewGameState(cfg)
	if err != nil {
		return err
	}
	g, err := game.NewGame(cfg, state)
	if err != nil {
		return err
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	display := terminal.NewDisplay(screen)
	intents := terminal.NewIntents(cfg.Terminal.IntentHoldTicks)
	events := terminal.PollEvents(screen)

	ticker := time.NewTicker(time.Second / time.Duration(max(cfg.Terminal.TPS, 1)))
	defer ticker.Stop()

	display.Draw(g.FrameBuffer())
	for range ticker.C {
		if !terminal.Drain(events, intents) {
			return nil
		}
		if err := g.Tick(intents.Controls()); err != nil {
			if errors.Is(err, game.ErrQuit) {
				return nil
			}
			return err
		}
		display.Draw(g.FrameBuffer())
	}
	return nil
}
