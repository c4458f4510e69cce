// Package tui provides the Bubble Tea integration for the sweeper.
// It handles the terminal UI loop, input mapping and autoplay pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTick bounds the tick interval so a zero move delay does not spin.
const minTick = time.Millisecond

// TickMsg is sent to trigger one autoplay step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval < minTick {
		interval = minTick
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
