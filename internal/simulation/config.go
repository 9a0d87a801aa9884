// Package simulation provides configuration and per-tick state for the demos.
// Settings are loaded from data files so each run can tweak constants without
// rebuilding.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all demo settings
type Config struct {
	// Window and loop
	Window WindowConfig `json:"window" yaml:"window"`

	// Sprite compositor demo
	Sprite SpriteConfig `json:"sprite" yaml:"sprite"`

	// Collision demo
	Collision CollisionConfig `json:"collision" yaml:"collision"`

	// Scratch memory for loaded resources
	ArenaBytes int `json:"arena_bytes" yaml:"arena_bytes"`
}

// WindowConfig defines the window and tick rate
type WindowConfig struct {
	Width  int    `json:"width" yaml:"width"`   // Window width in pixels
	Height int    `json:"height" yaml:"height"` // Window height in pixels
	Title  string `json:"title" yaml:"title"`
	TPS    int    `json:"tps" yaml:"tps"` // Update calls per second
}

// SpriteConfig defines the sprite sheet and how it is drawn
type SpriteConfig struct {
	Path            string     `json:"path" yaml:"path"`                           // Raw RGBA sheet, no header
	FrameWidth      int        `json:"frame_width" yaml:"frame_width"`             // Frame width in pixels
	FrameHeight     int        `json:"frame_height" yaml:"frame_height"`           // Frame height in pixels
	FrameCount      int        `json:"frame_count" yaml:"frame_count"`             // Frames in the sheet
	FrameIntervalMS int        `json:"frame_interval_ms" yaml:"frame_interval_ms"` // Time per animation frame
	PosX            float32    `json:"pos_x" yaml:"pos_x"`
	PosY            float32    `json:"pos_y" yaml:"pos_y"`
	CenterX         float32    `json:"center_x" yaml:"center_x"`
	CenterY         float32    `json:"center_y" yaml:"center_y"`
	FlipX           bool       `json:"flip_x" yaml:"flip_x"`
	FlipY           bool       `json:"flip_y" yaml:"flip_y"`
	Mask            string     `json:"mask" yaml:"mask"` // solid, hline, vline, diag, check, point
	Tint            [4]float32 `json:"tint" yaml:"tint"` // RGBA applied to every corner
}

// CollisionConfig defines the mover and tile rules
type CollisionConfig struct {
	MapPath string  `json:"map_path" yaml:"map_path"` // Empty uses the built-in room
	Radius  float64 `json:"radius" yaml:"radius"`     // Rounding around each tile
	Slop    float64 `json:"slop" yaml:"slop"`         // Allowed penetration
	Speed   float64 `json:"speed" yaml:"speed"`       // World units per tick
	StartX  float64 `json:"start_x" yaml:"start_x"`
	StartY  float64 `json:"start_y" yaml:"start_y"`
}

// DefaultConfig returns the settings the demos were tuned with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  768,
			Height: 480,
			Title:  "test window",
			TPS:    60,
		},
		Sprite: SpriteConfig{
			Path:            "diamond",
			FrameWidth:      9,
			FrameHeight:     9,
			FrameCount:      42,
			FrameIntervalMS: 200,
			Mask:            "vline",
			Tint:            [4]float32{1, 1, 1, 1},
		},
		Collision: CollisionConfig{
			Radius: 0.4,
			Slop:   0.005,
			Speed:  0.05,
			StartX: 2,
			StartY: 2,
		},
		ArenaBytes: 16 * 1024 * 1024,
	}
}

// DefaultCollisionConfig returns the defaults with the collision demo's
// square window.
func DefaultCollisionConfig() *Config {
	c := DefaultConfig()
	c.Window.Width = 400
	c.Window.Height = 400
	c.Window.Title = "test"
	return c
}

// LoadConfig loads settings from a JSON or YAML file over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigWithDefaults(path, DefaultConfig())
}

// LoadConfigWithDefaults loads settings from a JSON or YAML file, chosen by
// extension, over defaults. A missing file yields defaults unchanged.
func LoadConfigWithDefaults(path string, defaults *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := defaults // Start with defaults
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values that would otherwise break the demos at runtime
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Sprite.FrameWidth <= 0 || c.Sprite.FrameHeight <= 0 || c.Sprite.FrameCount <= 0 {
		return fmt.Errorf("invalid sprite layout: %d frames of %dx%d",
			c.Sprite.FrameCount, c.Sprite.FrameWidth, c.Sprite.FrameHeight)
	}
	if c.Sprite.FrameIntervalMS <= 0 {
		return fmt.Errorf("invalid frame interval: %dms", c.Sprite.FrameIntervalMS)
	}
	if c.Collision.Radius < 0 || c.Collision.Slop < 0 {
		return fmt.Errorf("radius and slop must not be negative")
	}
	if c.ArenaBytes <= 0 {
		return fmt.Errorf("invalid arena size: %d", c.ArenaBytes)
	}
	return nil
}

// TicksPerFrame converts the animation interval to update ticks, at least 1
func (c *Config) TicksPerFrame() int {
	ticks := c.Sprite.FrameIntervalMS * c.Window.TPS / 1000
	if ticks < 1 {
		return 1
	}
	return ticks
}
