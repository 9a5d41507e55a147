package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Ctrl+S           - Save a PNG screenshot
  Esc/Q/Ctrl+C     - Quit

The snake keeps moving in its current direction. Turning straight back
is ignored. When the snake hits a wall or itself, the game ends and the
score is printed.

Examples:
  snake play
  snake play --seed 7
  snake play --interval 150ms --player ada
  snake play --log-file ~/.snake/snake.log`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with the score")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, "snake")
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := cfg.Runtime(width, height)
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger.Info("starting game", "seed", rc.Seed, "interval", rc.TickInterval, "config", cfg.Source)

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	engine := snake.New(rand.New(rand.NewSource(rc.Seed)))
	driver := loop.NewDriver(engine, loop.WithInterval(rc.TickInterval))

	result, err := tui.Run(driver, rc, tui.Options{
		Store:         scoreSaver(store),
		Player:        flagPlayer,
		Theme:         cfg.Theme.SnakeTheme(),
		ScreenshotDir: config.ExpandHome(cfg.Screenshots.Dir),
		CellSize:      cfg.Screenshots.CellSize,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if msg := result.Message(); msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}
