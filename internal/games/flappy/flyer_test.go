package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewFlyerPlacement(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	f := NewFlyer(cfg)

	if f.X != 200 {
		t.Errorf("X = %v, expected a quarter of 800", f.X)
	}
	if f.Y != 300 {
		t.Errorf("Y = %v, expected the vertical center 300", f.Y)
	}
	if f.Velocity != 0 {
		t.Errorf("new flyer should be at rest, got velocity %v", f.Velocity)
	}
}

func TestFlyerGravity(t *testing.T) {
	f := NewFlyer(config.DefaultFlappyConfig())

	f.Integrate()
	if f.Velocity != 0.5 || f.Y != 300.5 {
		t.Errorf("after one frame: velocity=%v y=%v, expected 0.5 and 300.5", f.Velocity, f.Y)
	}

	f.Integrate()
	if f.Velocity != 1.0 || f.Y != 301.5 {
		t.Errorf("after two frames: velocity=%v y=%v, expected 1.0 and 301.5", f.Velocity, f.Y)
	}
}

func TestFlyerFlapOverridesVelocity(t *testing.T) {
	f := NewFlyer(config.DefaultFlappyConfig())

	f.Velocity = 12
	f.Flap()
	if f.Velocity != -8 {
		t.Errorf("flap should set velocity to -8, got %v", f.Velocity)
	}

	// Not additive
	f.Flap()
	if f.Velocity != -8 {
		t.Errorf("a second flap should still give -8, got %v", f.Velocity)
	}
}

func TestFlyerRotationClamped(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float64
	}{
		{velocity: -0.5, want: 0},           // -0.5 + 0.5 gravity = 0
		{velocity: 1.5, want: 0.1},          // 2 * 0.05
		{velocity: 40, want: math.Pi / 4},   // clamped down
		{velocity: -40, want: -math.Pi / 4}, // clamped up
	}

	for _, tc := range tests {
		f := NewFlyer(config.DefaultFlappyConfig())
		f.Velocity = tc.velocity
		f.Integrate()
		if math.Abs(f.Rotation-tc.want) > 1e-9 {
			t.Errorf("velocity %v: rotation = %v, expected %v", tc.velocity, f.Rotation, tc.want)
		}
	}
}

func TestFlyerFloorClamp(t *testing.T) {
	f := NewFlyer(config.DefaultFlappyConfig())
	f.Y = 555
	f.Velocity = 10

	if !f.Integrate() {
		t.Fatal("reaching the floor should report a terminal collision")
	}
	if f.Y != 560 {
		t.Errorf("Y = %v, expected snap to 600-40", f.Y)
	}
	if f.Velocity != 0 {
		t.Errorf("velocity should be zeroed on the floor, got %v", f.Velocity)
	}
}

func TestFlyerCeilingIsSoft(t *testing.T) {
	f := NewFlyer(config.DefaultFlappyConfig())
	f.Y = 3
	f.Flap()

	if f.Integrate() {
		t.Error("the ceiling must not end the run")
	}
	if f.Y != 0 || f.Velocity != 0 {
		t.Errorf("ceiling should clamp y and velocity to 0, got y=%v velocity=%v", f.Y, f.Velocity)
	}
}

func TestFlyerUpdateSignalsSession(t *testing.T) {
	s := quietSession(config.DefaultFlappyConfig())
	s.flyer.Y = 559
	s.flyer.Velocity = 5

	s.flyer.Update(s)
	if s.Cause() != CauseFloor {
		t.Errorf("cause = %v, expected floor", s.Cause())
	}
}

func TestFlyerDrawTilt(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	tests := []struct {
		rotation float64
		face     rune
	}{
		{-0.7, FlyerFaceUp},
		{0, FlyerFace},
		{0.7, FlyerFaceDown},
	}

	for _, tc := range tests {
		dst := newRecordingSurface(cfg)
		f := NewFlyer(cfg)
		f.Rotation = tc.rotation
		f.Draw(dst)

		if len(dst.calls) != 1 || dst.calls[0].kind != "sprite" {
			t.Fatalf("expected a single sprite, got %+v", dst.calls)
		}
		if dst.calls[0].face != tc.face {
			t.Errorf("rotation %v: face = %q, expected %q", tc.rotation, dst.calls[0].face, tc.face)
		}
	}
}
