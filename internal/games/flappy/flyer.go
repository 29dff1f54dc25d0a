package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// maxTilt bounds the flyer rotation in both directions.
const maxTilt = math.Pi / 4

// Flyer is the player-controlled object. Its x position never changes after
// creation.
type Flyer struct {
	X, Y     float64
	Velocity float64
	Width    float64
	Height   float64
	Rotation float64 // Radians, positive = nose down

	gravity      float64
	flapVelocity float64
	rotationGain float64
	floor        float64
}

// NewFlyer creates a flyer at rest, a quarter of the way across the
// playfield with its top edge on the vertical center.
func NewFlyer(cfg config.FlappyConfig) *Flyer {
	return &Flyer{
		X:            cfg.Playfield.Width * cfg.Flyer.XFraction,
		Y:            cfg.Playfield.Height / 2,
		Width:        cfg.Flyer.Width,
		Height:       cfg.Flyer.Height,
		gravity:      cfg.Physics.Gravity,
		flapVelocity: cfg.Physics.FlapVelocity,
		rotationGain: cfg.Physics.RotationGain,
		floor:        cfg.Playfield.Height,
	}
}

// Integrate applies one frame of gravity and clamps the flyer to the
// playfield. It reports whether the flyer reached the floor. The ceiling
// stops the flyer without ending the run.
func (f *Flyer) Integrate() (hitFloor bool) {
	f.Velocity += f.gravity
	f.Y += f.Velocity
	f.Rotation = core.ClampF(f.Velocity*f.rotationGain, -maxTilt, maxTilt)

	if f.Y+f.Height >= f.floor {
		f.Y = f.floor - f.Height
		f.Velocity = 0
		hitFloor = true
	}

	if f.Y <= 0 {
		f.Y = 0
		f.Velocity = 0
	}

	return hitFloor
}

// Flap replaces the current velocity with the upward flap velocity.
func (f *Flyer) Flap() {
	f.Velocity = f.flapVelocity
}

// Rect returns the flyer hitbox.
func (f *Flyer) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.Width, f.Height)
}

// Update implements Entity.
func (f *Flyer) Update(s *Session) {
	if f.Integrate() {
		s.signalCollision(CauseFloor)
	}
}

// Draw implements Entity. The face glyph follows the tilt.
func (f *Flyer) Draw(dst Surface) {
	face := FlyerFace
	switch {
	case f.Rotation < -maxTilt/3:
		face = FlyerFaceUp
	case f.Rotation > maxTilt/3:
		face = FlyerFaceDown
	}
	dst.DrawSprite(f.X, f.Y, f.Width, f.Height, FlyerBody, face, FlyerColor)
}
