package world

import (
	"cmp"
	"slices"

	"raymarch/internal/mathutil"
)

// TileID identifies a wall texture in the wall atlas.
type TileID int

// EmptyTile marks a walkable cell with nothing to render.
const EmptyTile TileID = -1

// Player is the viewer pose plus this tick's motion intent.
// Turn and Walk are in {-1, 0, 1}.
type Player struct {
	X, Y      float64
	Direction float64 // radians
	FOV       float64 // radians
	Turn      int
	Walk      int
}

// Sprite is a billboard placed in the map.
type Sprite struct {
	X, Y      float64
	TextureID int
	Distance  float64 // to the player, refreshed every tick
}

// CompareByDistanceDesc orders sprites farthest first.
func CompareByDistanceDesc(a, b Sprite) int {
	return cmp.Compare(b.Distance, a.Distance)
}

// UpdateSpriteDistances recomputes each sprite's distance to (x, y).
func UpdateSpriteDistances(sprites []Sprite, x, y float64) {
	for i := range sprites {
		sprites[i].Distance = mathutil.Distance(x, y, sprites[i].X, sprites[i].Y)
	}
}

// SortSpritesFarthestFirst sorts in place, keeping input order for ties.
func SortSpritesFarthestFirst(sprites []Sprite) {
	slices.SortStableFunc(sprites, CompareByDistanceDesc)
}
