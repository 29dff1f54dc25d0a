// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and timer scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/clock"
)

// FrameMsg asks the model to run one simulation step.
type FrameMsg struct {
	Token clock.Token
}

// CountdownMsg asks the model to advance the pre-run countdown.
type CountdownMsg struct {
	Token clock.Token
}

// frameCmd schedules the next simulation step at the given frame rate.
func frameCmd(tickRate int, tok clock.Token) tea.Cmd {
	return tea.Tick(clock.FrameInterval(tickRate), func(time.Time) tea.Msg {
		return FrameMsg{Token: tok}
	})
}

// countdownCmd schedules the next countdown step after interval.
func countdownCmd(interval time.Duration, tok clock.Token) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return CountdownMsg{Token: tok}
	})
}
