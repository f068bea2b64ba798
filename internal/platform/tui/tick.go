// Package tui runs arcade games in the terminal with Bubble Tea, locally or
// over SSH, and hosts the menus and the scoreboard around them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when a config carries no usable rate.
const defaultTickRate = 60

// TickMsg advances the running game by one simulation step.
type TickMsg time.Time

// tickInterval is the frame time for tickRate steps per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
