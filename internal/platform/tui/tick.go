// Package tui runs GNU Dash in the terminal with Bubble Tea: the game loop,
// the main menu and the session run board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
