package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// drawCall records one primitive issued against a recordingSurface.
type drawCall struct {
	kind       string
	x, y, w, h float64
	fill, face rune
	color      core.Color
	text       string
}

// recordingSurface is a Surface that remembers what was drawn.
type recordingSurface struct {
	w, h  float64
	calls []drawCall
}

func newRecordingSurface(cfg config.FlappyConfig) *recordingSurface {
	return &recordingSurface{w: cfg.Playfield.Width, h: cfg.Playfield.Height}
}

func (r *recordingSurface) Clear()          { r.calls = r.calls[:0] }
func (r *recordingSurface) Width() float64  { return r.w }
func (r *recordingSurface) Height() float64 { return r.h }

func (r *recordingSurface) FillRect(x, y, w, h float64, fill rune, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, fill: fill, color: c})
}

func (r *recordingSurface) FillArc(cx, cy, radius float64, fill rune, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "arc", x: cx, y: cy, w: radius, fill: fill, color: c})
}

func (r *recordingSurface) DrawSprite(x, y, w, h float64, body, face rune, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "sprite", x: x, y: y, w: w, h: h, fill: body, face: face, color: c})
}

func (r *recordingSurface) DrawText(x, y float64, text string, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "text", x: x, y: y, text: text, color: c})
}

func (r *recordingSurface) DrawTextCentered(y float64, text string, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "text", y: y, text: text, color: c})
}

func (r *recordingSurface) DrawPanel(y float64, lines []string, c core.Color) {
	for _, l := range lines {
		r.calls = append(r.calls, drawCall{kind: "panel", y: y, text: l, color: c})
	}
}

func (r *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingSurface) hasText(text string) bool {
	for _, c := range r.calls {
		if (c.kind == "text" || c.kind == "panel") && c.text == text {
			return true
		}
	}
	return false
}

var _ Surface = (*recordingSurface)(nil)

// startRunning takes a fresh machine through the whole countdown and returns
// the first frame token.
func startRunning(m *Machine) clock.Token {
	tok, ok := m.Start()
	if !ok {
		panic("Start() refused")
	}
	for {
		next, ok := m.CountdownTick(tok)
		if !ok {
			panic("countdown stalled")
		}
		if next.Task == clock.TaskFrame {
			return next
		}
		tok = next
	}
}

// quietSession returns a session whose frame counter is off the spawn
// cadence and which has no obstacles yet.
func quietSession(cfg config.FlappyConfig) *Session {
	s := NewSession(cfg, 1)
	s.frames = 1
	return s
}
