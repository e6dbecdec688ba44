package game

import (
	"raymarch/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler samples the keyboard into Controls once per tick.
type InputHandler struct {
	keys *keytracker.KeyStateTracker
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{keys: keytracker.New()}
}

func newInputHandlerWithPoller(p keytracker.Poller) *InputHandler {
	return &InputHandler{keys: keytracker.NewWithPoller(p)}
}

// Sample reads the held movement keys and the edge-triggered actions.
// Opposing keys cancel out.
func (ih *InputHandler) Sample() Controls {
	var c Controls
	if ih.anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		c.Turn--
	}
	if ih.anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		c.Turn++
	}
	if ih.anyPressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		c.Walk++
	}
	if ih.anyPressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		c.Walk--
	}
	c.Quit = ih.keys.IsKeyPressed(ebiten.KeyEscape)
	c.Screenshot = ih.keys.IsKeyJustPressed(ebiten.KeyF12)
	return c
}

func (ih *InputHandler) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ih.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
