// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// PacmanConfig contains all configuration for the Maze Chase game.
type PacmanConfig struct {
	Modes      PacmanModes      `yaml:"modes" toml:"modes"`
	Speeds     PacmanSpeeds     `yaml:"speeds" toml:"speeds"`
	House      PacmanHouse      `yaml:"house" toml:"house"`
	Fruit      PacmanFruit      `yaml:"fruit" toml:"fruit"`
	Gameplay   PacmanGameplay   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PacmanModes defines the ghost mode schedule in milliseconds.
type PacmanModes struct {
	ChaseMs              int `yaml:"chase_ms" toml:"chase_ms"`
	ScatterMs            int `yaml:"scatter_ms" toml:"scatter_ms"`
	LateScatterMs        int `yaml:"late_scatter_ms" toml:"late_scatter_ms"`
	FrightenedMs         int `yaml:"frightened_ms" toml:"frightened_ms"`
	MaxWaves             int `yaml:"max_waves" toml:"max_waves"`
	LateScatterAfterWave int `yaml:"late_scatter_after_wave" toml:"late_scatter_after_wave"`
}

// PacmanSpeeds defines agent speeds in pixels per logic tick.
type PacmanSpeeds struct {
	Ghost            int `yaml:"ghost" toml:"ghost"`
	GhostFrightened  int `yaml:"ghost_frightened" toml:"ghost_frightened"`
	GhostOutFromHome int `yaml:"ghost_out_from_home" toml:"ghost_out_from_home"`
	Pacman           int `yaml:"pacman" toml:"pacman"`
}

// PacmanHouse defines when ghosts may leave the house.
type PacmanHouse struct {
	InkyDots     int `yaml:"inky_dots" toml:"inky_dots"`         // Eaten dots before Inky leaves
	ClydeDivisor int `yaml:"clyde_divisor" toml:"clyde_divisor"` // Clyde leaves after total/divisor dots
}

// PacmanFruit defines bonus fruit timing.
type PacmanFruit struct {
	AppearAfterMs int `yaml:"appear_after_ms" toml:"appear_after_ms"`
	VisibleMs     int `yaml:"visible_ms" toml:"visible_ms"`
}

// PacmanGameplay defines lives and pacing.
type PacmanGameplay struct {
	Lives           int `yaml:"lives" toml:"lives"`
	LogicGateMs     int `yaml:"logic_gate_ms" toml:"logic_gate_ms"`         // Minimum simulated time between logic ticks
	LevelClearTicks int `yaml:"level_clear_ticks" toml:"level_clear_ticks"` // Pause after a cleared level
	PelletBlinkMs   int `yaml:"pellet_blink_ms" toml:"pellet_blink_ms"`
}

// Chase returns the chase phase length.
func (m PacmanModes) Chase() time.Duration { return ms(m.ChaseMs) }

// Scatter returns the early scatter phase length.
func (m PacmanModes) Scatter() time.Duration { return ms(m.ScatterMs) }

// LateScatter returns the scatter phase length after the early waves.
func (m PacmanModes) LateScatter() time.Duration { return ms(m.LateScatterMs) }

// Frightened returns the fright length.
func (m PacmanModes) Frightened() time.Duration { return ms(m.FrightenedMs) }

// AppearAfter returns the wait before a fruit appears.
func (f PacmanFruit) AppearAfter() time.Duration { return ms(f.AppearAfterMs) }

// Visible returns how long an uneaten fruit stays.
func (f PacmanFruit) Visible() time.Duration { return ms(f.VisibleMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate reports the first unusable value.
func (c PacmanConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"modes.chase_ms", c.Modes.ChaseMs},
		{"modes.scatter_ms", c.Modes.ScatterMs},
		{"modes.late_scatter_ms", c.Modes.LateScatterMs},
		{"modes.frightened_ms", c.Modes.FrightenedMs},
		{"modes.max_waves", c.Modes.MaxWaves},
		{"house.inky_dots", c.House.InkyDots},
		{"house.clyde_divisor", c.House.ClydeDivisor},
		{"fruit.appear_after_ms", c.Fruit.AppearAfterMs},
		{"fruit.visible_ms", c.Fruit.VisibleMs},
		{"gameplay.lives", c.Gameplay.Lives},
		{"gameplay.pellet_blink_ms", c.Gameplay.PelletBlinkMs},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.value)
		}
	}

	// Agents must land exactly on tile boundaries.
	speeds := []struct {
		name  string
		value int
	}{
		{"speeds.ghost", c.Speeds.Ghost},
		{"speeds.ghost_frightened", c.Speeds.GhostFrightened},
		{"speeds.ghost_out_from_home", c.Speeds.GhostOutFromHome},
		{"speeds.pacman", c.Speeds.Pacman},
	}
	for _, s := range speeds {
		if s.value != 1 && s.value != 2 {
			return fmt.Errorf("%w: %s must be 1 or 2, got %d", ErrInvalid, s.name, s.value)
		}
	}

	if c.Gameplay.LogicGateMs < 0 {
		return fmt.Errorf("%w: gameplay.logic_gate_ms must not be negative, got %d", ErrInvalid, c.Gameplay.LogicGateMs)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FrightenedReduction float64 `yaml:"frightened_reduction" toml:"frightened_reduction"` // Share of fright time removed at max difficulty
	ScatterReduction    float64 `yaml:"scatter_reduction" toml:"scatter_reduction"`       // Share of scatter time removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// PresetNames lists the difficulty presets in order of increasing challenge,
// with fixed last.
func PresetNames() []string {
	return []string{
		string(DifficultyEasy),
		string(DifficultyNormal),
		string(DifficultyHard),
		string(DifficultyFixed),
	}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal, hard or fixed)", ErrInvalid, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
// Normal starts from the classic schedule.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
