package game

import (
	"math"

	"raymarch/internal/config"
	"raymarch/internal/world"
)

// Movement holds the per-tick step sizes.
type Movement struct {
	MoveSpeed     float64 // map units per tick
	RotationSpeed float64 // radians per tick
}

// MovementFromConfig reads the step sizes from cfg.
func MovementFromConfig(cfg *config.Config) Movement {
	return Movement{MoveSpeed: cfg.GetMoveSpeed(), RotationSpeed: cfg.GetRotationSpeed()}
}

// forward returns the unit view vector for direction.
func forward(direction float64) (float64, float64) {
	return math.Cos(direction), math.Sin(direction)
}

// Advance applies the player's intents for one tick, then refreshes sprite
// distances and re-sorts the sprites farthest first.
//
// A step is dropped when its target cell is outside the map. Otherwise each
// axis moves on its own if its cell is empty, so the player slides along
// walls instead of sticking to them.
func Advance(s *GameState, mv Movement) {
	p := &s.Player
	p.Direction += float64(p.Turn) * mv.RotationSpeed

	fx, fy := forward(p.Direction)
	newX := p.X + float64(p.Walk)*fx*mv.MoveSpeed
	newY := p.Y + float64(p.Walk)*fy*mv.MoveSpeed

	if inMap(s.Map, newX, newY) {
		if s.Map.IsEmptyAt(newX, p.Y) {
			p.X = newX
		}
		if s.Map.IsEmptyAt(p.X, newY) {
			p.Y = newY
		}
	}

	world.UpdateSpriteDistances(s.Sprites, p.X, p.Y)
	world.SortSpritesFarthestFirst(s.Sprites)
}

// inMap checks the truncated cell of (x, y), so a coordinate just below
// zero still counts as inside.
func inMap(m *world.Map, x, y float64) bool {
	i, j := int(x), int(y)
	return i >= 0 && j >= 0 && i < m.Width() && j < m.Height()
}
