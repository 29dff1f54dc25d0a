package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are layered over the defaults, so a document only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped silently when missing or malformed.
func Load(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as YAML.
func Encode(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable field. In
// particular the gap band must fit: height >= gap_size + 2*min_height.
func (c FlappyConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must have a positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height)

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative")
	check(c.Physics.FlapVelocity < 0, "physics.flap_velocity must be negative (upward)")
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive")
	check(!math.IsNaN(c.Physics.RotationGain), "physics.rotation_gain must be a number")

	check(c.Flyer.Width > 0 && c.Flyer.Height > 0, "flyer must have a positive size")
	check(c.Flyer.Height < c.Playfield.Height, "flyer.height must be smaller than the playfield")
	check(c.Flyer.XFraction >= 0 && c.Flyer.XFraction < 1, "flyer.x_fraction must be in [0, 1)")

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width must be positive")
	check(o.GapSize > 0, "obstacles.gap_size must be positive")
	check(o.MinHeight >= 0, "obstacles.min_height must not be negative")
	check(o.SpawnEvery > 0, "obstacles.spawn_every must be positive")
	check(o.GapSize+2*float64(o.MinHeight) <= c.Playfield.Height,
		"obstacles.gap_size + 2*min_height (%v) exceeds playfield height %v",
		o.GapSize+2*float64(o.MinHeight), c.Playfield.Height)

	check(c.Scenery.Clouds >= 0, "scenery.clouds must not be negative")
	for i, l := range c.Scenery.Layers {
		check(l.Height > 0, "scenery.layers[%d] must have a positive height", i)
		_, ok := core.ColorByName(l.Color)
		check(ok, "scenery.layers[%d] has unknown color %q", i, l.Color)
	}

	check(c.Countdown.From >= 1, "countdown.from must be at least 1")
	check(c.Countdown.Interval > 0, "countdown.interval must be positive")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
