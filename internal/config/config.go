package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Movement    MovementConfig    `yaml:"movement"`
	Textures    TextureConfig     `yaml:"textures"`
	Sprites     []SpriteConfig    `yaml:"sprites"`
	Render      RenderConfig      `yaml:"render"`
	Output      OutputConfig      `yaml:"output"`
	Terminal    TerminalConfig    `yaml:"terminal"`
	Performance PerformanceConfig `yaml:"performance"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

type WorldConfig struct {
	MapFile string `yaml:"map_file"` // empty selects the built-in map
}

// PlayerConfig is the starting pose. A start marker in the map file wins
// over X and Y.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Direction   float64 `yaml:"direction"`
	FieldOfView float64 `yaml:"field_of_view"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type TextureConfig struct {
	Walls            string `yaml:"walls"`   // empty generates a placeholder atlas
	Sprites          string `yaml:"sprites"` // empty generates a placeholder atlas
	PlaceholderSize  int    `yaml:"placeholder_size"`
	PlaceholderCount int    `yaml:"placeholder_count"`
}

type SpriteConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Texture int     `yaml:"texture"`
}

type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 serial, -1 one per CPU
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // ppm, png or webp
	Scale  int    `yaml:"scale"`
	Frames int    `yaml:"frames"`
}

type TerminalConfig struct {
	TPS             int `yaml:"tps"`
	IntentHoldTicks int `yaml:"intent_hold_ticks"`
}

type PerformanceConfig struct {
	LogInterval int     `yaml:"log_interval"` // frames between reports, 0 disables
	MinFPS      float64 `yaml:"min_fps"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1024,
			ScreenHeight: 512,
			WindowTitle:  "raymarch",
			TPS:          60,
		},
		Player: PlayerConfig{
			X:           3.456,
			Y:           2.345,
			Direction:   1.523,
			FieldOfView: math.Pi / 3,
		},
		Movement: MovementConfig{
			MoveSpeed:     0.05,
			RotationSpeed: 0.05,
		},
		Textures: TextureConfig{
			PlaceholderSize:  64,
			PlaceholderCount: 6,
		},
		Sprites: []SpriteConfig{
			{X: 3.523, Y: 3.812, Texture: 2},
			{X: 1.834, Y: 8.765, Texture: 0},
			{X: 5.323, Y: 5.365, Texture: 1},
			{X: 4.123, Y: 10.265, Texture: 1},
		},
		Output: OutputConfig{
			Dir:    "out",
			Format: "ppm",
			Scale:  1,
			Frames: 360,
		},
		Terminal: TerminalConfig{
			TPS:             30,
			IntentHoldTicks: 6,
		},
		Performance: PerformanceConfig{
			LogInterval: 600,
			MinFPS:      30,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Missing or zero fields
// take their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

func (c *Config) applyDefaults() {
	d := Default()

	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = d.Display.WindowTitle
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = d.Display.TPS
	}

	// A zero pose is a legal position only in a wall, so treat it as unset.
	if c.Player.X == 0 && c.Player.Y == 0 {
		c.Player.X, c.Player.Y = d.Player.X, d.Player.Y
		if c.Player.Direction == 0 {
			c.Player.Direction = d.Player.Direction
		}
	}
	if c.Player.FieldOfView == 0 {
		c.Player.FieldOfView = d.Player.FieldOfView
	}

	if c.Movement.MoveSpeed == 0 {
		c.Movement.MoveSpeed = d.Movement.MoveSpeed
	}
	if c.Movement.RotationSpeed == 0 {
		c.Movement.RotationSpeed = d.Movement.RotationSpeed
	}

	if c.Textures.PlaceholderSize == 0 {
		c.Textures.PlaceholderSize = d.Textures.PlaceholderSize
	}
	if c.Textures.PlaceholderCount == 0 {
		c.Textures.PlaceholderCount = d.Textures.PlaceholderCount
	}
	if c.Sprites == nil {
		c.Sprites = d.Sprites
	}

	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
	if c.Output.Scale == 0 {
		c.Output.Scale = d.Output.Scale
	}
	if c.Output.Frames == 0 {
		c.Output.Frames = d.Output.Frames
	}

	if c.Terminal.TPS == 0 {
		c.Terminal.TPS = d.Terminal.TPS
	}
	if c.Terminal.IntentHoldTicks == 0 {
		c.Terminal.IntentHoldTicks = d.Terminal.IntentHoldTicks
	}
	if c.Performance.MinFPS == 0 {
		c.Performance.MinFPS = d.Performance.MinFPS
	}
}

// Validate reports the first setting the renderer cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.ScreenWidth%2 != 0:
		return fmt.Errorf("screen width %d must be even", c.Display.ScreenWidth)
	case c.Display.TPS < 0 || c.Terminal.TPS < 0:
		return fmt.Errorf("negative tick rate")
	case c.Player.FieldOfView <= 0 || c.Player.FieldOfView >= math.Pi:
		return fmt.Errorf("field of view %v outside (0, π)", c.Player.FieldOfView)
	case c.Render.Workers < -1:
		return fmt.Errorf("render workers %d: use -1 for one per CPU", c.Render.Workers)
	case c.Textures.PlaceholderSize < 0 || c.Textures.PlaceholderCount < 0:
		return fmt.Errorf("negative placeholder atlas geometry")
	case c.Output.Scale < 0 || c.Output.Frames < 0:
		return fmt.Errorf("negative output scale or frame count")
	case c.Terminal.IntentHoldTicks < 0:
		return fmt.Errorf("negative intent hold ticks")
	}
	for i, s := range c.Sprites {
		if s.Texture < 0 {
			return fmt.Errorf("sprite %d: negative texture %d", i, s.Texture)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCameraFOV() float64 {
	return c.Player.FieldOfView
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotationSpeed() float64 {
	return c.Movement.RotationSpeed
}

func (c *Config) GetRenderWorkers() int {
	return c.Render.Workers
}

func (c *Config) GetOutputScale() int {
	return max(c.Output.Scale, 1)
}

// GetDefaultFOV is π/3 (60 degrees).
func (c *Config) GetDefaultFOV() float64 {
	return math.Pi / 3
}
