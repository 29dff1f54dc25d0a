package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ParallaxLayer is a horizontal strip that scrolls at its own speed and
// wraps once it has moved a full playfield width.
type ParallaxLayer struct {
	Name   string
	X, Y   float64
	Width  float64 // Twice the playfield width, so the strip always covers the view
	Height float64
	Speed  float64
	Color  core.Color

	wrapAt float64
}

// NewParallaxLayer creates a strip from its config, anchored to the bottom
// of the playfield.
func NewParallaxLayer(spec config.LayerSpec, playfield config.FlappyPlayfield) *ParallaxLayer {
	c, _ := core.ColorByName(spec.Color)
	return &ParallaxLayer{
		Name:   spec.Name,
		Y:      playfield.Height - spec.Offset,
		Width:  playfield.Width * 2,
		Height: spec.Height,
		Speed:  spec.Speed,
		Color:  c,
		wrapAt: -playfield.Width,
	}
}

// Update implements Entity.
func (l *ParallaxLayer) Update(*Session) {
	l.X -= l.Speed
	if l.X <= l.wrapAt {
		l.X = 0
	}
}

// Draw implements Entity. The strip is drawn twice back to back.
func (l *ParallaxLayer) Draw(dst Surface) {
	dst.FillRect(l.X, l.Y, l.Width, l.Height, LayerChar, l.Color)
	dst.FillRect(l.X+l.Width, l.Y, l.Width, l.Height, LayerChar, l.Color)
}

// Cloud is a drifting background decoration with no gameplay effect.
type Cloud struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64

	fieldW float64
	fieldH float64
}

// NewCloud creates a cloud somewhere in the playfield-wide strip just right
// of the visible area, with random size and speed.
func NewCloud(rng *rand.Rand, playfield config.FlappyPlayfield) *Cloud {
	c := &Cloud{
		fieldW: playfield.Width,
		fieldH: playfield.Height,
		Speed:  0.5 + rng.Float64()*0.5,
	}
	c.X = c.fieldW + rng.Float64()*c.fieldW
	c.reshape(rng)
	return c
}

// reshape picks a new height band position and size.
func (c *Cloud) reshape(rng *rand.Rand) {
	c.Y = rng.Float64() * max(c.fieldH/2-50, 0)
	c.Width = 70 + rng.Float64()*70
	c.Height = 40 + rng.Float64()*30
}

// Update implements Entity. A cloud that has drifted out on the left comes
// back just off the right edge with a fresh position and size.
func (c *Cloud) Update(s *Session) {
	c.X -= c.Speed
	if c.X+c.Width < 0 {
		c.X = c.fieldW + s.scenery.Float64()*200
		c.reshape(s.scenery)
	}
}

// Draw implements Entity. A cloud is four overlapping puffs.
func (c *Cloud) Draw(dst Surface) {
	r := c.Height / 2
	cy := c.Y + r
	for i := 0; i < 4; i++ {
		dst.FillArc(c.X+c.Width*float64(i)/3, cy, r, CloudChar, CloudColor)
	}
}
