// keytracker.go - edge-triggered key detection for Ebiten v2.8.8
// ebiten only reports whether a key is held; this turns that into presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller reports whether a key is currently held.
type Poller func(ebiten.Key) bool

// KeyStateTracker remembers the previous state of every key it was asked
// about.
type KeyStateTracker struct {
	pressed Poller
	prev    map[ebiten.Key]bool
}

// New tracks keys through ebiten.IsKeyPressed.
func New() *KeyStateTracker {
	return NewWithPoller(ebiten.IsKeyPressed)
}

// NewWithPoller tracks keys through an arbitrary poller.
func NewWithPoller(p Poller) *KeyStateTracker {
	return &KeyStateTracker{pressed: p, prev: make(map[ebiten.Key]bool)}
}

// IsKeyJustPressed returns true if the key was not pressed last time it was
// checked but is pressed now.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := k.pressed(key)
	justPressed := pressed && !k.prev[key]
	k.prev[key] = pressed
	return justPressed
}

// IsKeyPressed reports the raw held state without affecting edge detection.
func (k *KeyStateTracker) IsKeyPressed(key ebiten.Key) bool {
	return k.pressed(key)
}
