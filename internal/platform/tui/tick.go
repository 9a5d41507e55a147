// Package tui runs the snake game in a terminal through Bubble Tea, locally
// or over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per host-loop iteration.
type FrameMsg time.Time

// frameCmd schedules the next host-loop iteration.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
