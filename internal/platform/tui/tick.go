// Package tui hosts the session in a terminal with Bubble Tea. It owns the
// frame clock, translates key and mouse events into input snapshots, and
// renders the session's cell buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// maxFrameDelta caps dt after a stall so the simulation never jumps far.
const maxFrameDelta = 0.1

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first
// frame, and any frame whose clock went backwards, uses the nominal
// interval.
func frameDelta(last, now time.Time, tickRate int) float64 {
	nominal := 1 / float64(tickRate)
	if last.IsZero() || !now.After(last) {
		return nominal
	}
	dt := now.Sub(last).Seconds()
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
