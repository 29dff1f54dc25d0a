// Package flappy implements a Flappy Bird-style game.
// The player flaps a falling flyer through the gaps of scrolling obstacles;
// touching an obstacle or the ground ends the run.
package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Visual characters for rendering
const (
	FlyerBody     = '●'
	FlyerFaceUp   = '◥'
	FlyerFace     = '▶'
	FlyerFaceDown = '◢'
	PipeChar      = '█'
	PipeCapChar   = '▓'
	CloudChar     = '░'
	LayerChar     = '▒'
)

// Colors for rendering
const (
	FlyerColor   = core.ColorBrightYellow
	PipeColor    = core.ColorCyan
	PipeCapColor = core.ColorBrightCyan
	CloudColor   = core.ColorBrightWhite
	HUDColor     = core.ColorBrightWhite
	PanelColor   = core.ColorWhite
)

// Pipe cap geometry, in playfield units.
const (
	capOverhang = 5
	capHeight   = 20
)

// Surface is the drawing target the game renders onto. Coordinates are in
// playfield units; the implementation maps them to whatever it displays on.
type Surface interface {
	Clear()
	Width() float64
	Height() float64
	FillRect(x, y, w, h float64, fill rune, c core.Color)
	FillArc(cx, cy, r float64, fill rune, c core.Color)
	DrawSprite(x, y, w, h float64, body, face rune, c core.Color)
	DrawText(x, y float64, text string, c core.Color)
	DrawTextCentered(y float64, text string, c core.Color)
	DrawPanel(y float64, lines []string, c core.Color)
}

// Entity is anything that takes part in a running step and appears on screen.
type Entity interface {
	// Update advances the entity by one frame. Entities report terminal
	// collisions and score through the session.
	Update(s *Session)

	// Draw contributes the entity to the current frame.
	Draw(dst Surface)
}

var (
	_ Entity = (*Flyer)(nil)
	_ Entity = (*Obstacle)(nil)
	_ Entity = (*ParallaxLayer)(nil)
	_ Entity = (*Cloud)(nil)
)
