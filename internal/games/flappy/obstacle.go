package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of pipes with a vertical gap between them.
type Obstacle struct {
	X         float64 // Left edge
	Width     float64
	TopHeight float64 // Bottom edge of the top pipe, top of the gap
	BottomY   float64 // Top edge of the bottom pipe, bottom of the gap
	Scored    bool    // Whether the flyer has been credited for passing
}

// NewObstacle creates an obstacle whose gap starts at topHeight.
func NewObstacle(x, width, topHeight, gapSize float64) *Obstacle {
	return &Obstacle{
		X:         x,
		Width:     width,
		TopHeight: topHeight,
		BottomY:   topHeight + gapSize,
	}
}

// Overlaps reports whether the flyer rectangle touches either pipe of o.
// Horizontal overlap is strict on both sides; given horizontal overlap, the
// flyer collides when its top is above the gap or its bottom below it.
func Overlaps(flyer core.Rect, o *Obstacle) bool {
	if !(flyer.Right() > o.X && flyer.X < o.X+o.Width) {
		return false
	}
	return flyer.Y < o.TopHeight || flyer.Bottom() > o.BottomY
}

// PassedBy reports whether x lies strictly beyond the trailing edge.
func (o *Obstacle) PassedBy(x float64) bool {
	return x > o.X+o.Width
}

// OffScreen reports whether the obstacle has fully left the playfield.
func (o *Obstacle) OffScreen() bool {
	return o.X+o.Width <= 0
}

// Update implements Entity: scroll, then score and collision against the
// flyer's current position. Both checks run every frame independently.
func (o *Obstacle) Update(s *Session) {
	o.X -= s.cfg.Physics.ScrollSpeed

	if !o.Scored && o.PassedBy(s.flyer.X) {
		o.Scored = true
		s.score++
	}

	if Overlaps(s.flyer.Rect(), o) {
		s.signalCollision(CauseObstacle)
	}
}

// Draw implements Entity.
func (o *Obstacle) Draw(dst Surface) {
	floor := dst.Height()

	// Top pipe and its cap
	dst.FillRect(o.X, 0, o.Width, o.TopHeight, PipeChar, PipeColor)
	dst.FillRect(o.X-capOverhang, o.TopHeight-capHeight, o.Width+2*capOverhang, capHeight, PipeCapChar, PipeCapColor)

	// Bottom pipe and its cap
	dst.FillRect(o.X, o.BottomY, o.Width, floor-o.BottomY, PipeChar, PipeColor)
	dst.FillRect(o.X-capOverhang, o.BottomY, o.Width+2*capOverhang, capHeight, PipeCapChar, PipeCapColor)
}
