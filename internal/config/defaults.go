package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Maze Chase configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Modes: PacmanModes{
			ChaseMs:              20000,
			ScatterMs:            7000,
			LateScatterMs:        5000,
			FrightenedMs:         7000,
			MaxWaves:             4,
			LateScatterAfterWave: 2,
		},
		Speeds: PacmanSpeeds{
			Ghost:            2,
			GhostFrightened:  1,
			GhostOutFromHome: 1,
			Pacman:           2,
		},
		House: PacmanHouse{
			InkyDots:     30,
			ClydeDivisor: 3,
		},
		Fruit: PacmanFruit{
			AppearAfterMs: 30000,
			VisibleMs:     10000,
		},
		Gameplay: PacmanGameplay{
			Lives:           3,
			LogicGateMs:     10,
			LevelClearTicks: 90, // ~1.5 seconds at 60 FPS
			PelletBlinkMs:   500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				FrightenedReduction: 0.7,
				ScatterReduction:    0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
