package main

import (
	"log"

	"raymarch/internal/config"
	"raymarch/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	state, err := game.NewGameState(cfg)
	if err != nil {
		log.Fatalf("Failed to set up world: %v", err)
	}
	g, err := game.NewGame(cfg, state)
	if err != nil {
		log.Fatalf("Failed to set up renderer: %v", err)
	}
	defer g.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game.NewGameLoop(g)); err != nil {
		log.Fatal(err)
	}
}
