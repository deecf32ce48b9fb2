// Package tui provides the Bubble Tea integration for the pathfinding demo.
// It handles the terminal UI loop, input mapping and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a demo frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks, clamped to [0, limit].
// The first tick has no predecessor and yields 0. A zero limit disables
// the upper clamp.
func frameDelta(prev, now time.Time, limit time.Duration) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
