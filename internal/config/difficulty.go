package config

import (
	"math"
	"time"
)

// DifficultyManager calculates level-dependent game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a 1-indexed game level.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(gameLevel-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Frightened returns the fright length for a game level.
func (d *DifficultyManager) Frightened(base time.Duration, gameLevel int) time.Duration {
	return d.reduce(base, d.cfg.Scaling.FrightenedReduction, gameLevel)
}

// Scatter returns a scatter length for a game level.
func (d *DifficultyManager) Scatter(base time.Duration, gameLevel int) time.Duration {
	return d.reduce(base, d.cfg.Scaling.ScatterReduction, gameLevel)
}

func (d *DifficultyManager) reduce(base time.Duration, share float64, gameLevel int) time.Duration {
	share = clampF(share, 0.0, 0.9) // Never shrink a phase to nothing
	level := d.Level(gameLevel)
	scaled := time.Duration(float64(base) * (1.0 - level*share))
	// Whole milliseconds keep the schedule readable in logs.
	return scaled.Round(time.Millisecond)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
