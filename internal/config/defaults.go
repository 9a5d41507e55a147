package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickInterval: 300 * time.Millisecond,
			FrameRate:    60,
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/scores.db",
		},
		Screenshots: ScreenshotConfig{
			Dir:      "~/.snake/screenshots",
			CellSize: 30,
		},
		Theme: ThemeConfig{
			Head:      "█",
			Body:      "▓",
			Food:      "●",
			Wall:      "█",
			Empty:     "·",
			HeadColor: "bright_red",
			BodyColor: "white",
			FoodColor: "bright_green",
			WallColor: "white",
		},
		Server: ServerConfig{
			SSHAddr:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
