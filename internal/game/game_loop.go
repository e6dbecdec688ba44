package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop adapts a Game to ebiten's Update/Draw/Layout cycle.
type GameLoop struct {
	game         *Game
	inputHandler *InputHandler
	pixels       []byte
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *Game) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(),
	}
}

// Update samples input and runs one tick. Quitting ends the run cleanly.
func (gl *GameLoop) Update() error {
	err := gl.game.Tick(gl.inputHandler.Sample())
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw uploads the last rendered frame to the screen.
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.pixels = gl.game.FrameBuffer().RGBABytes(gl.pixels)
	screen.WritePixels(gl.pixels)
}

// Layout returns the framebuffer dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	fb := gl.game.FrameBuffer()
	return fb.Width(), fb.Height()
}
