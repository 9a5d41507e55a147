package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/picture"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreSaver records a finished game. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(player string, score int) (int64, error)
}

var _ ScoreSaver = (*storage.Store)(nil)

// Options configure a Model beyond the driver and screen size.
type Options struct {
	Store  ScoreSaver // nil plays without saving scores
	Player string
	Theme  snake.Theme

	// ScreenshotDir enables ctrl+s when non-empty.
	ScreenshotDir string
	CellSize      int

	// HoldOnGameOver keeps the final board on screen with an overlay
	// until the next key press instead of quitting at once.
	HoldOnGameOver bool

	Logger *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	driver *loop.Driver
	screen *core.Screen
	held   *HeldKeys
	keys   KeyMap
	help   help.Model
	opts   Options
	logger *log.Logger

	frameInterval time.Duration
	scoreSaved    bool
	holding       bool
	quitting      bool
}

// NewModel creates a model that drives d. cfg supplies the initial screen
// size and frame rate.
func NewModel(d *loop.Driver, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Theme == (snake.Theme{}) {
		opts.Theme = snake.DefaultTheme()
	}
	if opts.CellSize <= 0 {
		opts.CellSize = picture.DefaultCellSize
	}

	keys := DefaultKeyMap()
	keys.Screenshot.SetEnabled(opts.ScreenshotDir != "")

	return Model{
		driver:        d,
		screen:        core.NewScreen(cfg.ScreenW, boardRows(cfg.ScreenH)),
		held:          NewHeldKeys(),
		keys:          keys,
		help:          help.New(),
		opts:          opts,
		logger:        logger,
		frameInterval: cfg.FrameInterval(),
	}
}

// boardRows leaves the last terminal row for the help line.
func boardRows(termH int) int {
	return max(termH-1, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.holding {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.driver.Close()
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.held.Press(m.keys.Heading(msg))
	return m, nil
}

// handleFrame advances the driver by one host-loop iteration.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.driver.State() == loop.Terminated {
		return m, nil
	}

	res := m.driver.Frame(m.held)
	if res.Ticked {
		m.held.Clear()
	}

	if res.State == loop.Terminated {
		m.finish()
		if m.opts.HoldOnGameOver {
			m.holding = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, frameCmd(m.frameInterval)
}

// finish saves the score once per game.
func (m *Model) finish() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	result := m.driver.Result()
	m.logger.Info("game ended",
		"player", m.opts.Player,
		"score", result.Score,
		"ticks", result.Ticks,
		"reason", result.Reason,
		"cause", result.Cause,
	)

	if m.opts.Store == nil || result.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Player, result.Score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current board to a PNG file.
func (m *Model) saveScreenshot() {
	name := fmt.Sprintf("snake_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)

	err := picture.SavePNG(path, m.driver.Engine(), m.opts.CellSize, picture.DefaultPalette())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.driver.Engine().Render(m.screen, m.opts.Theme, m.driver.Score())
	if m.holding {
		snake.DrawOverlay(m.screen, m.driver.Result().Message(), "press any key")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Result reports how the session ended.
func (m Model) Result() loop.Result {
	return m.driver.Result()
}

// Run plays one game in the terminal and reports how it ended.
func Run(d *loop.Driver, cfg core.RuntimeConfig, opts Options) (loop.Result, error) {
	p := tea.NewProgram(NewModel(d, cfg, opts), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return d.Result(), fmt.Errorf("tui: %w", err)
	}
	return d.Result(), nil
}
