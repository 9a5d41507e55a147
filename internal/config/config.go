// Package config provides YAML-based configuration loading for the game,
// the local player and the servers.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config is the full application configuration.
type Config struct {
	Game        GameConfig       `yaml:"game"`
	Storage     StorageConfig    `yaml:"storage"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Theme       ThemeConfig      `yaml:"theme"`
	Server      ServerConfig     `yaml:"server"`

	// Source is the file the config was read from, empty for the
	// embedded default.
	Source string `yaml:"-"`
}

// GameConfig defines pacing and randomness.
type GameConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	FrameRate    int           `yaml:"frame_rate"`
	Seed         int64         `yaml:"seed"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ScreenshotConfig defines PNG frame output.
type ScreenshotConfig struct {
	Dir      string `yaml:"dir"`
	CellSize int    `yaml:"cell_size"`
}

// ThemeConfig defines glyphs and color names for terminal rendering.
type ThemeConfig struct {
	Head      string `yaml:"head"`
	Body      string `yaml:"body"`
	Food      string `yaml:"food"`
	Wall      string `yaml:"wall"`
	Empty     string `yaml:"empty"`
	HeadColor string `yaml:"head_color"`
	BodyColor string `yaml:"body_color"`
	FoodColor string `yaml:"food_color"`
	WallColor string `yaml:"wall_color"`
}

// ServerConfig defines the SSH and HTTP listeners used by serve.
type ServerConfig struct {
	SSHAddr     string        `yaml:"ssh_addr"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	HTTPAddr    string        `yaml:"http_addr"` // empty disables the scoreboard
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Game.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_interval must be positive, got %v", c.Game.TickInterval))
	}
	if c.Game.FrameRate < 1 || c.Game.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("game.frame_rate must be in [1, 240], got %d", c.Game.FrameRate))
	}
	if c.Screenshots.CellSize < 4 {
		errs = append(errs, fmt.Errorf("screenshots.cell_size must be at least 4, got %d", c.Screenshots.CellSize))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %v", c.Server.IdleTimeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid values: %w", errors.Join(errs...))
	}
	return nil
}

// Runtime returns the session settings for a screen of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      screenW,
		ScreenH:      screenH,
		FrameRate:    c.Game.FrameRate,
		TickInterval: c.Game.TickInterval,
		Seed:         c.Game.Seed,
	}
}

// SnakeTheme converts the configured glyphs and colors. Empty glyphs keep
// the default theme's value.
func (t ThemeConfig) SnakeTheme() snake.Theme {
	theme := snake.DefaultTheme()
	glyph := func(s string, fallback rune) rune {
		for _, r := range s {
			return r
		}
		return fallback
	}
	color := func(name string, fallback core.Color) core.Color {
		if name == "" {
			return fallback
		}
		return core.ParseColor(name)
	}

	theme.Head = glyph(t.Head, theme.Head)
	theme.Body = glyph(t.Body, theme.Body)
	theme.Food = glyph(t.Food, theme.Food)
	theme.Wall = glyph(t.Wall, theme.Wall)
	theme.Empty = glyph(t.Empty, theme.Empty)
	theme.HeadColor = color(t.HeadColor, theme.HeadColor)
	theme.BodyColor = color(t.BodyColor, theme.BodyColor)
	theme.FoodColor = color(t.FoodColor, theme.FoodColor)
	theme.WallColor = color(t.WallColor, theme.WallColor)
	return theme
}
