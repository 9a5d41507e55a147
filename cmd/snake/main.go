// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play a game (same as snake play)
//	snake play               - Play a game
//	snake scores             - Show high scores
//	snake serve              - Start SSH server for remote play
//	snake preview            - Render a fresh board to PNG
//
// Global flags:
//
//	--config <path>   - Config YAML (default: ~/.snake/config.yaml if present)
//	--seed <value>    - RNG seed for reproducible games (0 = time based)
//	--interval <dur>  - Time between snake moves (default: 300ms)
//	--fps <rate>      - Host loop frame rate (default: 60)
//	--db <path>       - Scores database (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagInterval time.Duration
	flagFPS      int
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game on a 20x20 board. Eat the food to grow,
and avoid the walls and your own tail.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  preview  - Render a fresh board to a PNG file

Examples:
  snake
  snake --seed 42 --interval 200ms
  snake scores --limit 5
  snake serve --ssh :2222 --http :8080`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.DurationVar(&flagInterval, "interval", 0, "Time between snake moves (default from config, 300ms)")
	flags.IntVar(&flagFPS, "fps", 0, "Frame rate of the host loop (default from config, 60)")
	flags.StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
}
