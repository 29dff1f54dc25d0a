package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ObstacleGenerator spawns obstacles on a fixed frame cadence and drops the
// ones that have scrolled off the left edge.
type ObstacleGenerator struct {
	obstacles  []*Obstacle
	rng        *rand.Rand
	spawnX     float64
	width      float64
	gapSize    float64
	minHeight  int
	maxHeight  int
	spawnEvery int
	spawned    int
}

// NewObstacleGenerator creates a generator with the given RNG seed.
func NewObstacleGenerator(cfg config.FlappyConfig, seed int64) *ObstacleGenerator {
	o := cfg.Obstacles
	maxHeight := int(math.Floor(cfg.Playfield.Height-o.GapSize)) - o.MinHeight
	if maxHeight < o.MinHeight {
		maxHeight = o.MinHeight // Edge case for playfields that skipped validation
	}

	return &ObstacleGenerator{
		obstacles:  make([]*Obstacle, 0, 8),
		rng:        rand.New(rand.NewSource(seed)),
		spawnX:     cfg.Playfield.Width,
		width:      o.Width,
		gapSize:    o.GapSize,
		minHeight:  o.MinHeight,
		maxHeight:  maxHeight,
		spawnEvery: max(o.SpawnEvery, 1),
	}
}

// GapBand returns the inclusive range topHeight is drawn from.
func (g *ObstacleGenerator) GapBand() (lo, hi int) {
	return g.minHeight, g.maxHeight
}

// Advance runs the per-frame bookkeeping: spawn when frame falls on the
// cadence (frame 0 included), then prune.
func (g *ObstacleGenerator) Advance(frame int) {
	if frame%g.spawnEvery == 0 {
		g.Spawn()
	}
	g.Prune()
}

// Spawn adds an obstacle at the right edge with a uniformly random gap.
func (g *ObstacleGenerator) Spawn() *Obstacle {
	topHeight := g.minHeight + g.rng.Intn(g.maxHeight-g.minHeight+1)
	o := NewObstacle(g.spawnX, g.width, float64(topHeight), g.gapSize)
	g.obstacles = append(g.obstacles, o)
	g.spawned++
	return o
}

// Prune removes obstacles that are fully past the left edge, keeping the
// order of the rest. It returns how many were removed.
func (g *ObstacleGenerator) Prune() int {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	removed := len(g.obstacles) - len(kept)
	clear(g.obstacles[len(kept):])
	g.obstacles = kept
	return removed
}

// Obstacles returns the active obstacles, oldest first.
func (g *ObstacleGenerator) Obstacles() []*Obstacle {
	return g.obstacles
}

// Spawned returns how many obstacles have been created since the generator
// was built.
func (g *ObstacleGenerator) Spawned() int {
	return g.spawned
}
