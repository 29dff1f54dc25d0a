package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded document cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:  800,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      0.5,
			FlapVelocity: -8,
			RotationGain: 0.05,
			ScrollSpeed:  2,
		},
		Flyer: FlappyFlyer{
			XFraction: 0.25,
			Width:     40,
			Height:    40,
		},
		Obstacles: FlappyObstacles{
			Width:      80,
			GapSize:    150,
			MinHeight:  50,
			SpawnEvery: 200,
		},
		Scenery: FlappyScenery{
			Clouds: 6,
			Layers: []LayerSpec{
				{Name: "grass", Offset: 100, Height: 100, Speed: 1, Color: "green"},
				{Name: "dirt", Offset: 20, Height: 20, Speed: 1.5, Color: "brown"},
			},
		},
		Countdown: FlappyCountdown{
			From:     3,
			Interval: time.Second,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
