package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GetScreenWidth() != 1024 || cfg.GetScreenHeight() != 512 {
		t.Errorf("screen = %dx%d, want 1024x512", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if len(cfg.Sprites) != 4 {
		t.Errorf("default sprites = %d, want 4", len(cfg.Sprites))
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "display:\n  window_title: test\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.WindowTitle != "test" {
		t.Errorf("title = %q", cfg.Display.WindowTitle)
	}
	if cfg.GetScreenWidth() != 1024 || cfg.Display.TPS != 60 {
		t.Errorf("display defaults not applied: %+v", cfg.Display)
	}
	if cfg.GetMoveSpeed() != 0.05 || cfg.GetRotationSpeed() != 0.05 {
		t.Errorf("movement defaults not applied: %+v", cfg.Movement)
	}
	if cfg.GetCameraFOV() != math.Pi/3 {
		t.Errorf("fov = %v", cfg.GetCameraFOV())
	}
	if cfg.Output.Format != "ppm" || cfg.Output.Frames != 360 || cfg.GetOutputScale() != 1 {
		t.Errorf("output defaults not applied: %+v", cfg.Output)
	}
	if cfg.Player.X != 3.456 || cfg.Player.Direction != 1.523 {
		t.Errorf("player defaults not applied: %+v", cfg.Player)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	body := `
display:
  screen_width: 640
  screen_height: 320
player:
  x: 2.5
  y: 7.5
  direction: 0
render:
  workers: -1
output:
  format: webp
  scale: 3
sprites:
  - {x: 1.5, y: 1.5, texture: 1}
`
	cfg, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GetScreenWidth() != 640 || cfg.GetScreenHeight() != 320 {
		t.Errorf("screen = %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.Player.X != 2.5 || cfg.Player.Y != 7.5 || cfg.Player.Direction != 0 {
		t.Errorf("player = %+v", cfg.Player)
	}
	if cfg.GetRenderWorkers() != -1 {
		t.Errorf("workers = %d", cfg.GetRenderWorkers())
	}
	if cfg.Output.Format != "webp" || cfg.GetOutputScale() != 3 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if len(cfg.Sprites) != 1 || cfg.Sprites[0].Texture != 1 {
		t.Errorf("sprites = %+v", cfg.Sprites)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"odd width", func(c *Config) { c.Display.ScreenWidth = 641 }, "even"},
		{"negative height", func(c *Config) { c.Display.ScreenHeight = -1 }, "screen size"},
		{"fov too wide", func(c *Config) { c.Player.FieldOfView = math.Pi }, "field of view"},
		{"fov negative", func(c *Config) { c.Player.FieldOfView = -0.1 }, "field of view"},
		{"workers", func(c *Config) { c.Render.Workers = -2 }, "workers"},
		{"sprite texture", func(c *Config) { c.Sprites = []SpriteConfig{{Texture: -1}} }, "texture"},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: Validate() = %v, want error containing %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
	if _, err := LoadConfig(writeConfig(t, "display: [1, 2\n")); err == nil {
		t.Error("bad yaml: expected error")
	}
	if _, err := LoadConfig(writeConfig(t, "display:\n  screen_width: 333\n")); err == nil {
		t.Error("odd width: expected validation error")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}
