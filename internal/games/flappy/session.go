package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// CollisionCause records what ended a run.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseObstacle
	CauseFloor
)

// String returns a human-readable cause.
func (c CollisionCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseObstacle:
		return "obstacle"
	case CauseFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Session owns all state of a single run. A new session is built for every
// start and restart; nothing carries over between runs.
type Session struct {
	cfg       config.FlappyConfig
	flyer     *Flyer
	obstacles *ObstacleGenerator
	layers    []*ParallaxLayer
	clouds    []*Cloud
	scenery   *rand.Rand // Clouds only, so decoration never shifts gap bands
	score     int
	frames    int
	cause     CollisionCause
}

// NewSession builds a fresh run: a resting flyer on the vertical center, no
// obstacles, new clouds and layers, score and frame counter at zero.
func NewSession(cfg config.FlappyConfig, seed int64) *Session {
	s := &Session{
		cfg:       cfg,
		flyer:     NewFlyer(cfg),
		obstacles: NewObstacleGenerator(cfg, seed),
		scenery:   rand.New(rand.NewSource(seed + 1)),
	}

	s.layers = make([]*ParallaxLayer, 0, len(cfg.Scenery.Layers))
	for _, spec := range cfg.Scenery.Layers {
		s.layers = append(s.layers, NewParallaxLayer(spec, cfg.Playfield))
	}

	s.clouds = make([]*Cloud, 0, cfg.Scenery.Clouds)
	for _i := 0; _i < cfg.Scenery.Clouds; _i++ {
		s.clouds = append(s.clouds, NewCloud(s.scenery, cfg.Playfield))
	}

	return s
}

// Step advances the run by one frame and reports whether it ended.
//
// Order matters: decorations, layers, obstacle spawn/prune, each obstacle
// (scroll, score, collision), then the flyer. Obstacle checks therefore see
// the flyer where the previous frame left it. A collision does not cut the
// step short; the remaining entities still update.
func (s *Session) Step() bool {
	for _, c := range s.clouds {
		c.Update(s)
	}
	for _, l := range s.layers {
		l.Update(s)
	}

	s.obstacles.Advance(s.frames)
	for _, o := range s.obstacles.Obstacles() {
		o.Update(s)
	}

	s.flyer.Update(s)
	s.frames++

	return s.cause != CauseNone
}

// signalCollision records a terminal collision. The first cause sticks.
func (s *Session) signalCollision(cause CollisionCause) {
	if s.cause == CauseNone {
		s.cause = cause
	}
}

// Entities returns everything drawable, back to front.
func (s *Session) Entities() []Entity {
	out := make([]Entity, 0, len(s.clouds)+len(s.layers)+len(s.obstacles.Obstacles())+1)
	for _, c := range s.clouds {
		out = append(out, c)
	}
	for _, l := range s.layers {
		out = append(out, l)
	}
	for _, o := range s.obstacles.Obstacles() {
		out = append(out, o)
	}
	return append(out, s.flyer)
}

// Draw renders every entity onto dst.
func (s *Session) Draw(dst Surface) {
	for _, e := range s.Entities() {
		e.Draw(dst)
	}
}

// Flyer returns the run's flyer.
func (s *Session) Flyer() *Flyer { return s.flyer }

// Obstacles returns the active obstacles, oldest first.
func (s *Session) Obstacles() []*Obstacle { return s.obstacles.Obstacles() }

// Score returns the number of obstacles passed.
func (s *Session) Score() int { return s.score }

// Frames returns the number of completed steps.
func (s *Session) Frames() int { return s.frames }

// Cause returns what ended the run, or CauseNone while it is still going.
func (s *Session) Cause() CollisionCause { return s.cause }

// String summarizes the session for logs.
func (s *Session) String() string {
	return fmt.Sprintf("frames=%d score=%d obstacles=%d flyer.y=%.1f", s.frames, s.score, len(s.obstacles.Obstacles()), s.flyer.Y)
}
