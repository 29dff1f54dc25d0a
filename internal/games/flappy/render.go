package flappy

import (
	"fmt"
	"strconv"
)

// Render draws the current phase onto dst. It never changes game state.
func (m *Machine) Render(dst Surface) {
	dst.Clear()
	mid := dst.Height() / 2

	if m.phase == PhaseIdle || m.session == nil {
		dst.DrawPanel(mid, []string{
			"F L A P P Y",
			"",
			"Space / click to flap",
			"Press Enter to start",
		}, PanelColor)
		return
	}

	m.session.Draw(dst)
	dst.DrawText(dst.Width()*0.02, 0, fmt.Sprintf(" Score: %d ", m.session.Score()), HUDColor)

	switch m.phase {
	case PhaseCountdown:
		dst.DrawPanel(mid, []string{strconv.Itoa(m.countdown), "Get Ready!"}, PanelColor)
	case PhaseEnded:
		dst.DrawPanel(mid, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", m.finalScore),
			"Enter/R to restart  |  Q to quit",
		}, PanelColor)
	}
}
