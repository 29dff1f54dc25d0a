package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewSessionIsFresh(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewSession(cfg, 5)

	if s.Score() != 0 || s.Frames() != 0 {
		t.Errorf("score=%d frames=%d, expected zeros", s.Score(), s.Frames())
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("expected no obstacles, got %d", len(s.Obstacles()))
	}
	if len(s.layers) != len(cfg.Scenery.Layers) {
		t.Errorf("got %d layers, expected %d", len(s.layers), len(cfg.Scenery.Layers))
	}
	if s.Cause() != CauseNone {
		t.Errorf("cause = %v", s.Cause())
	}
}

func TestSessionFirstStepSpawns(t *testing.T) {
	s := NewSession(config.DefaultFlappyConfig(), 5)

	if s.Step() {
		t.Fatal("first step should not end the run")
	}
	if len(s.Obstacles()) != 1 {
		t.Fatalf("expected one obstacle on frame 0, got %d", len(s.Obstacles()))
	}
	if x := s.Obstacles()[0].X; x != 798 {
		t.Errorf("new obstacle should already have scrolled once, X = %v", x)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", s.Frames())
	}
}

// Obstacles are checked before the flyer moves, so the verdict depends on
// where the flyer was at the start of the step.
func TestSessionCollisionUsesPreUpdatePosition(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		velocity float64
		want     CollisionCause
	}{
		{"above gap, falls into it", 295, 10, CauseObstacle},
		{"in gap, falls through bottom pipe", 305, 120, CauseNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := quietSession(config.DefaultFlappyConfig())
			s.obstacles.obstacles = append(s.obstacles.obstacles, NewObstacle(190, 80, 300, 150))
			s.flyer.Y = tc.y
			s.flyer.Velocity = tc.velocity

			ended := s.Step()

			if s.Cause() != tc.want {
				t.Errorf("cause = %v, expected %v (flyer ended at y=%v)", s.Cause(), tc.want, s.flyer.Y)
			}
			if ended != (tc.want != CauseNone) {
				t.Errorf("Step() = %v", ended)
			}
		})
	}
}

func TestSessionCollisionFinishesStep(t *testing.T) {
	s := quietSession(config.DefaultFlappyConfig())
	s.obstacles.obstacles = append(s.obstacles.obstacles, NewObstacle(190, 80, 400, 150))

	if !s.Step() {
		t.Fatal("expected an obstacle collision")
	}
	if s.flyer.Y != 300.5 {
		t.Errorf("flyer should still integrate on the colliding step, y = %v", s.flyer.Y)
	}
	if s.Frames() != 2 {
		t.Errorf("frame counter should still advance, got %d", s.Frames())
	}
}

func TestSessionFirstCauseSticks(t *testing.T) {
	s := quietSession(config.DefaultFlappyConfig())
	s.obstacles.obstacles = append(s.obstacles.obstacles, NewObstacle(190, 80, 0, 540))
	s.flyer.Y = 559
	s.flyer.Velocity = 5

	s.Step()

	if s.Cause() != CauseObstacle {
		t.Errorf("cause = %v, expected the obstacle hit reported before the floor", s.Cause())
	}
}

// With a flyer that cannot hit anything, every obstacle that is no longer
// active-and-unscored has contributed exactly one point.
func TestSessionScoreAccounting(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.GapSize = cfg.Playfield.Height
	cfg.Obstacles.MinHeight = 0
	cfg.Obstacles.SpawnEvery = 50

	s := NewSession(cfg, 11)
	last := 0
	for _i := 0; _i < 2000; _i++ {
		if s.Step() {
			t.Fatalf("unexpected collision at frame %d: %v", s.Frames(), s.Cause())
		}
		if s.Score() < last {
			t.Fatalf("score decreased from %d to %d", last, s.Score())
		}
		last = s.Score()

		unscored := 0
		for _, o := range s.Obstacles() {
			if !o.Scored {
				unscored++
			}
		}
		if s.Score() != s.obstacles.Spawned()-unscored {
			t.Fatalf("frame %d: score %d, spawned %d, unscored %d", s.Frames(), s.Score(), s.obstacles.Spawned(), unscored)
		}
	}

	if s.obstacles.Spawned() != 40 {
		t.Errorf("spawned = %d, expected 40", s.obstacles.Spawned())
	}
	if s.Score() != 34 {
		t.Errorf("score = %d, expected 34", s.Score())
	}

	// Stop spawning and let every remaining obstacle go by.
	s.obstacles.spawnEvery = 1 << 30
	for _i := 0; _i < 500; _i++ {
		s.Step()
	}
	if s.Score() != s.obstacles.Spawned() {
		t.Errorf("all obstacles passed: score = %d, spawned = %d", s.Score(), s.obstacles.Spawned())
	}
}

func TestSessionEntitiesOrder(t *testing.T) {
	s := NewSession(config.DefaultFlappyConfig(), 5)
	s.Step()

	es := s.Entities()
	if len(es) != 6+2+1+1 {
		t.Fatalf("got %d entities", len(es))
	}
	if _, ok := es[0].(*Cloud); !ok {
		t.Errorf("clouds should be drawn first, got %T", es[0])
	}
	if _, ok := es[len(es)-1].(*Flyer); !ok {
		t.Errorf("flyer should be drawn last, got %T", es[len(es)-1])
	}
}

func TestSessionString(t *testing.T) {
	s := NewSession(config.DefaultFlappyConfig(), 5)
	got := s.String()
	if !strings.Contains(got, "frames=0") || !strings.Contains(got, "score=0") {
		t.Errorf("String() = %q", got)
	}
}

func TestCollisionCauseString(t *testing.T) {
	tests := map[CollisionCause]string{
		CauseNone:          "none",
		CauseObstacle:      "obstacle",
		CauseFloor:         "floor",
		CollisionCause(42): "unknown",
	}
	for c, want := range tests {
		if c.String() != want {
			t.Errorf("%d.String() = %q, expected %q", int(c), c.String(), want)
		}
	}
}
