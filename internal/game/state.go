package game

import (
	"fmt"

	"raymarch/internal/config"
	"raymarch/internal/graphics"
	"raymarch/internal/render"
	"raymarch/internal/world"
)

// GameState is the one mutable aggregate of a running game. Each tick
// passes it through input, physics and render in that order: input writes
// the player intents, physics writes the pose and sprite distances, and
// render only reads.
type GameState struct {
	Map         *world.Map
	Player      world.Player
	Sprites     []world.Sprite
	Walls       *graphics.TextureAtlas
	SpriteAtlas *graphics.TextureAtlas
}

// NewGameState builds the initial state from cfg: the map file or the
// built-in map, the starting pose, the sprites and both atlases.
func NewGameState(cfg *config.Config) (*GameState, error) {
	m := world.DefaultMap()
	var data *world.MapData
	if cfg.World.MapFile != "" {
		var err error
		if data, err = world.LoadMap(cfg.World.MapFile); err != nil {
			return nil, err
		}
		m = data.Map
	}

	s := &GameState{
		Map: m,
		Player: world.Player{
			X:         cfg.Player.X,
			Y:         cfg.Player.Y,
			Direction: cfg.Player.Direction,
			FOV:       cfg.Player.FieldOfView,
		},
	}
	if data != nil && data.HasStart {
		s.Player.X, s.Player.Y = data.StartX, data.StartY
	}
	if data != nil && len(data.Sprites) > 0 {
		s.Sprites = data.Sprites
	} else {
		for _, sc := range cfg.Sprites {
			s.Sprites = append(s.Sprites, world.Sprite{X: sc.X, Y: sc.Y, TextureID: sc.Texture})
		}
	}

	maxSprite := -1
	for _, sp := range s.Sprites {
		maxSprite = max(maxSprite, sp.TextureID)
	}

	tex := cfg.Textures
	var err error
	s.Walls, err = graphics.LoadOrPlaceholder(tex.Walls, graphics.WallAtlas,
		tex.PlaceholderSize, max(tex.PlaceholderCount, int(m.MaxTileID())+1))
	if err != nil {
		return nil, err
	}
	s.SpriteAtlas, err = graphics.LoadOrPlaceholder(tex.Sprites, graphics.SpriteAtlas,
		tex.PlaceholderSize, max(tex.PlaceholderCount, maxSprite+1))
	if err != nil {
		return nil, err
	}

	if err := s.check(); err != nil {
		return nil, err
	}
	world.UpdateSpriteDistances(s.Sprites, s.Player.X, s.Player.Y)
	world.SortSpritesFarthestFirst(s.Sprites)
	return s, nil
}

// check rejects states the renderer would panic on.
func (s *GameState) check() error {
	if id := int(s.Map.MaxTileID()); id >= s.Walls.TextureCount() {
		return fmt.Errorf("map uses tile %d but the wall atlas holds %d textures", id, s.Walls.TextureCount())
	}
	for i, sp := range s.Sprites {
		if sp.TextureID < 0 || sp.TextureID >= s.SpriteAtlas.TextureCount() {
			return fmt.Errorf("sprite %d uses texture %d but the sprite atlas holds %d",
				i, sp.TextureID, s.SpriteAtlas.TextureCount())
		}
	}
	if !s.Map.IsEmptyAt(s.Player.X, s.Player.Y) {
		return fmt.Errorf("player start (%.3f, %.3f) is not an empty cell", s.Player.X, s.Player.Y)
	}
	return nil
}

// Scene is the read-only view the renderer draws from.
func (s *GameState) Scene() render.Scene {
	return render.Scene{
		Map:         s.Map,
		Player:      s.Player,
		Sprites:     s.Sprites,
		Walls:       s.Walls,
		SpriteAtlas: s.SpriteAtlas,
	}
}
