package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"raymarch/internal/config"
	"raymarch/internal/graphics"
	"raymarch/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func parseState(t *testing.T, rows ...string) *GameState {
	t.Helper()
	data, err := world.ParseMap(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	return &GameState{
		Map:         data.Map,
		Player:      world.Player{X: data.StartX, Y: data.StartY, FOV: math.Pi / 3},
		Sprites:     data.Sprites,
		Walls:       graphics.PlaceholderWallAtlas(8, 2),
		SpriteAtlas: graphics.PlaceholderSpriteAtlas(8, 2),
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Display.ScreenWidth, cfg.Display.ScreenHeight = 128, 64
	cfg.Output.Dir = t.TempDir()
	cfg.Performance.LogInterval = 0
	return cfg
}

var step = Movement{MoveSpeed: 0.05, RotationSpeed: 0.05}

func TestAdvanceTurns(t *testing.T) {
	s := parseState(t, "111", "1@1", "111")
	s.Player.Turn = -1
	Advance(s, step)
	if s.Player.Direction != -0.05 {
		t.Errorf("direction = %v, want -0.05", s.Player.Direction)
	}
}

func TestAdvanceBlockedByWall(t *testing.T) {
	s := parseState(t, "11111", "1   1", "1 @ 1", "1   1", "11111")
	s.Player.X, s.Player.Y = 1.03, 2.5
	s.Player.Direction = math.Pi
	s.Player.Walk = 1
	Advance(s, step)
	if s.Player.X != 1.03 {
		t.Errorf("x = %v, walked into the wall", s.Player.X)
	}
}

func TestAdvanceSlidesAlongWall(t *testing.T) {
	s := parseState(t, "11111", "1   1", "1 @ 1", "1   1", "11111")
	s.Player.X, s.Player.Y = 2.5, 1.02
	s.Player.Direction = -math.Pi / 4
	s.Player.Walk = 1
	Advance(s, step)
	if s.Player.X <= 2.5 {
		t.Errorf("x = %v, expected to slide right", s.Player.X)
	}
	if s.Player.Y != 1.02 {
		t.Errorf("y = %v, walked into the wall", s.Player.Y)
	}
}

func TestAdvanceRejectsLeavingMap(t *testing.T) {
	s := parseState(t, "   ", " @ ", "   ")
	s.Player.X, s.Player.Y = 0.02, 1.5
	s.Player.Direction = math.Pi
	s.Player.Walk = 1
	Advance(s, Movement{MoveSpeed: 1.5})
	if s.Player.X != 0.02 || s.Player.Y != 1.5 {
		t.Errorf("player moved to (%v, %v)", s.Player.X, s.Player.Y)
	}

	Advance(s, step)
	if s.Player.X != 0.02 {
		t.Errorf("x = %v, stepped off the map", s.Player.X)
	}
}

func TestAdvanceWalksBackward(t *testing.T) {
	s := parseState(t, "11111", "1   1", "1 @ 1", "1   1", "11111")
	s.Player.Walk = -1
	Advance(s, step)
	if math.Abs(s.Player.X-2.45) > 1e-12 || s.Player.Y != 2.5 {
		t.Errorf("player at (%v, %v), want (2.45, 2.5)", s.Player.X, s.Player.Y)
	}
}

func TestAdvanceSortsSprites(t *testing.T) {
	s := parseState(t, "111111", "1@ a 1", "1    1", "1   b1", "111111")
	Advance(s, step)
	if len(s.Sprites) != 2 {
		t.Fatalf("sprites = %d", len(s.Sprites))
	}
	if s.Sprites[0].TextureID != 1 || s.Sprites[1].TextureID != 0 {
		t.Errorf("sprites not farthest first: %+v", s.Sprites)
	}
	if s.Sprites[1].Distance != 2 {
		t.Errorf("distance = %v, want 2", s.Sprites[1].Distance)
	}
}

func TestNewGameStateDefaults(t *testing.T) {
	s, err := NewGameState(config.Default())
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	if s.Map.Width() != 16 || s.Map.Height() != 16 {
		t.Errorf("map = %dx%d", s.Map.Width(), s.Map.Height())
	}
	if s.Player.X != 3.456 || s.Player.FOV != math.Pi/3 {
		t.Errorf("player = %+v", s.Player)
	}
	if len(s.Sprites) != 4 {
		t.Fatalf("sprites = %d", len(s.Sprites))
	}
	if !slices.IsSortedFunc(s.Sprites, world.CompareByDistanceDesc) {
		t.Error("sprites not sorted farthest first")
	}
	if s.Walls.TextureCount() < 6 || s.SpriteAtlas.TextureCount() < 3 {
		t.Errorf("atlases hold %d walls, %d sprites", s.Walls.TextureCount(), s.SpriteAtlas.TextureCount())
	}
}

func TestNewGameStateFromMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.map")
	body := "# test level\n11111\n1@ a1\n1  b1\n11111\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.World.MapFile = path

	s, err := NewGameState(cfg)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	if s.Player.X != 1.5 || s.Player.Y != 1.5 {
		t.Errorf("start = (%v, %v), want map marker", s.Player.X, s.Player.Y)
	}
	if len(s.Sprites) != 2 || s.Sprites[0].TextureID != 1 {
		t.Errorf("sprites = %+v", s.Sprites)
	}
}

func TestNewGameStateErrors(t *testing.T) {
	cfg := config.Default()
	cfg.World.MapFile = filepath.Join(t.TempDir(), "missing.map")
	if _, err := NewGameState(cfg); err == nil {
		t.Error("missing map: expected error")
	}

	cfg = config.Default()
	cfg.Textures.Walls = filepath.Join(t.TempDir(), "missing.png")
	if _, err := NewGameState(cfg); err == nil {
		t.Error("missing wall atlas: expected error")
	}

	cfg = config.Default()
	cfg.Player.X, cfg.Player.Y = 0.5, 0.5
	if _, err := NewGameState(cfg); err == nil {
		t.Error("start inside a wall: expected error")
	}
}

func TestTickPipeline(t *testing.T) {
	cfg := testConfig(t)
	s, err := NewGameState(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	y0 := s.Player.Y
	if err := g.Tick(Controls{Walk: 1}); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Player.Y <= y0 {
		t.Errorf("y = %v, expected to walk forward from %v", s.Player.Y, y0)
	}
	if s.Player.Walk != 1 {
		t.Errorf("walk intent = %d", s.Player.Walk)
	}
	if got := len(g.LastFrame().Depth); got != 64 {
		t.Errorf("depth buffer has %d columns, want 64", got)
	}

	dir := s.Player.Direction
	if err := g.Tick(Controls{Turn: 7}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Player.Direction-dir-0.05) > 1e-12 {
		t.Errorf("turn not clamped: direction moved by %v", s.Player.Direction-dir)
	}
}

func TestTickQuitLeavesState(t *testing.T) {
	cfg := testConfig(t)
	s, err := NewGameState(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	before := s.Player
	if err := g.Tick(Controls{Walk: 1, Quit: true}); !errors.Is(err, ErrQuit) {
		t.Fatalf("Tick = %v, want ErrQuit", err)
	}
	if s.Player != before {
		t.Errorf("player changed on quit: %+v", s.Player)
	}
}

func TestTickScreenshot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Format = "png"
	s, err := NewGameState(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	if err := g.Tick(Controls{Screenshot: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "screenshot_00000.png")); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}
}

func TestParallelGameMatchesSerial(t *testing.T) {
	frames := make([][]uint32, 0, 2)
	for _, workers := range []int{0, 3} {
		cfg := testConfig(t)
		cfg.Render.Workers = workers
		s, err := NewGameState(cfg)
		if err != nil {
			t.Fatal(err)
		}
		g, err := NewGame(cfg, s)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			if err := g.Tick(Controls{Turn: 1, Walk: 1}); err != nil {
				t.Fatal(err)
			}
		}
		frames = append(frames, slices.Clone(g.FrameBuffer().Pixels()))
		g.Close()
	}
	if !slices.Equal(frames[0], frames[1]) {
		t.Error("parallel game frames differ from serial")
	}
}

func TestInputHandlerSample(t *testing.T) {
	held := map[ebiten.Key]bool{}
	ih := newInputHandlerWithPoller(func(k ebiten.Key) bool { return held[k] })

	if c := ih.Sample(); c != (Controls{}) {
		t.Errorf("idle controls = %+v", c)
	}

	held[ebiten.KeyA] = true
	held[ebiten.KeyArrowUp] = true
	held[ebiten.KeyF12] = true
	c := ih.Sample()
	if c.Turn != -1 || c.Walk != 1 || !c.Screenshot || c.Quit {
		t.Errorf("controls = %+v", c)
	}
	if c := ih.Sample(); c.Screenshot {
		t.Error("held F12 took a second screenshot")
	}

	held[ebiten.KeyD] = true
	held[ebiten.KeyEscape] = true
	c = ih.Sample()
	if c.Turn != 0 || !c.Quit {
		t.Errorf("controls = %+v", c)
	}
}
