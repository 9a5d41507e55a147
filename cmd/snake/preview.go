package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/picture"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var flagOut string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a fresh board to PNG",
	Long: `Render the starting board, with food placed from the seed, to a
PNG file.

Examples:
  snake preview
  snake preview --seed 3 --out start.png`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagOut, "out", "board.png", "Output PNG path")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := snake.New(rand.New(rand.NewSource(seed)))
	if err := picture.SavePNG(flagOut, engine, cfg.Screenshots.CellSize, picture.DefaultPalette()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (seed %d)\n", flagOut, seed)
	return nil
}
