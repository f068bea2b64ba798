package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadPacman loads Maze Chase configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.{yaml,toml} ->
// ./configs/pacman.{yaml,toml} -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so a partial file only overrides
// what it names. A custom path ending in .toml is read as TOML.
func LoadPacman(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var candidates []string
	for _, name := range []string{"pacman.yaml", "pacman.toml"} {
		// Try user config directory
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			candidates = append(candidates, userCfgPath)
		}
	}
	// Then the local configs directory
	candidates = append(candidates, filepath.Join("configs", "pacman.yaml"), filepath.Join("configs", "pacman.toml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		found := DefaultPacmanConfig()
		if err := decode(path, data, &found); err == nil && found.Validate() == nil {
			return found, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format by file extension.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Modes.FrightenedMs = 9000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Modes.FrightenedMs = 5000
		cfg.Modes.ScatterMs = 5000
	}
}
