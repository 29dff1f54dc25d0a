// Package config provides YAML-based game configuration loading and
// validation.
package config

import "time"

// FlappyConfig contains all tunables for the game.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Flyer     FlappyFlyer     `yaml:"flyer"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Scenery   FlappyScenery   `yaml:"scenery"`
	Countdown FlappyCountdown `yaml:"countdown"`
}

// FlappyPlayfield is the logical drawing area. The simulation runs in these
// units no matter how large the terminal is.
type FlappyPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines per-frame physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every frame
	FlapVelocity float64 `yaml:"flap_velocity"` // Velocity set by a flap (negative = up)
	RotationGain float64 `yaml:"rotation_gain"` // Tilt per unit of velocity
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Obstacle movement per frame
}

// FlappyFlyer defines the player hitbox.
type FlappyFlyer struct {
	XFraction float64 `yaml:"x_fraction"` // Horizontal position as a share of playfield width
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// FlappyObstacles defines obstacle geometry and cadence.
type FlappyObstacles struct {
	Width      float64 `yaml:"width"`
	GapSize    float64 `yaml:"gap_size"`
	MinHeight  int     `yaml:"min_height"`  // Minimum height of either pipe segment
	SpawnEvery int     `yaml:"spawn_every"` // Frames between spawns
}

// FlappyScenery defines decorative elements.
type FlappyScenery struct {
	Clouds int         `yaml:"clouds"`
	Layers []LayerSpec `yaml:"layers"`
}

// LayerSpec describes one parallax strip anchored to the bottom of the playfield.
type LayerSpec struct {
	Name   string  `yaml:"name"`
	Offset float64 `yaml:"offset"` // Distance from the bottom edge to the strip top
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// FlappyCountdown defines the pre-run countdown.
type FlappyCountdown struct {
	From     int           `yaml:"from"`
	Interval time.Duration `yaml:"interval"`
}
