// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
// It maps keys and mouse to input frames, drives the fixed tick and renders
// the screen buffer with lipgloss.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick
// chain so a model ignores ticks scheduled by an earlier one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// newTickID returns a fresh tick chain ID.
func newTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
