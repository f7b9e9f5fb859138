// Package tui provides the Bubble Tea integration for the runaway platform.
// It handles the terminal UI loop, input mapping, sound cues and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures the wall-clock time between ticks.
// Tick deliveries drift under load, so the games step by measured time.
type frameClock struct {
	last time.Time
}

// tick returns the time since the previous tick, or zero on the first one.
func (c *frameClock) tick(now time.Time) time.Duration {
	var elapsed time.Duration
	if !c.last.IsZero() && now.After(c.last) {
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return elapsed
}

// reset forgets the previous tick, so a pause in ticking is not replayed.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
