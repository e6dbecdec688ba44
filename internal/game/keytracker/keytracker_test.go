package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestIsKeyJustPressedFiresOncePerPress(t *testing.T) {
	held := map[ebiten.Key]bool{}
	k := NewWithPoller(func(key ebiten.Key) bool { return held[key] })

	if k.IsKeyJustPressed(ebiten.KeyF12) {
		t.Fatal("idle key reported as pressed")
	}
	held[ebiten.KeyF12] = true
	if !k.IsKeyJustPressed(ebiten.KeyF12) {
		t.Fatal("press not reported")
	}
	if k.IsKeyJustPressed(ebiten.KeyF12) {
		t.Fatal("held key reported twice")
	}
	held[ebiten.KeyF12] = false
	k.IsKeyJustPressed(ebiten.KeyF12)
	held[ebiten.KeyF12] = true
	if !k.IsKeyJustPressed(ebiten.KeyF12) {
		t.Fatal("second press not reported")
	}
}

func TestKeysTrackedIndependently(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyA: true}
	k := NewWithPoller(func(key ebiten.Key) bool { return held[key] })

	if !k.IsKeyJustPressed(ebiten.KeyA) {
		t.Fatal("A press not reported")
	}
	held[ebiten.KeyB] = true
	if !k.IsKeyJustPressed(ebiten.KeyB) {
		t.Fatal("B press hidden by A")
	}
	if !k.IsKeyPressed(ebiten.KeyA) {
		t.Fatal("A no longer held")
	}
}
