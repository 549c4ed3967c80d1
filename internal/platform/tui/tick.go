// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval picks the frame interval: an explicit tick rate wins,
// otherwise one frame per simulation timestep.
func tickInterval(tickRate int, timestep float64) time.Duration {
	if tickRate > 0 {
		return time.Second / time.Duration(tickRate)
	}
	if timestep > 0 {
		return time.Duration(timestep * float64(time.Second))
	}
	return time.Second / 50
}
