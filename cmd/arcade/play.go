package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/registry"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Space/Esc      - Pause
  B                - Back (when paused or after game over)
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives and a longer fright
  normal - Ghosts get tougher as levels progress
  hard   - Fewer lives, short scatter and fright, starts tougher
  fixed  - No progression, stays at config's initial level

Without --difficulty a picker is shown before the game starts.

Examples:
  arcade play pacman
  arcade play pacman --difficulty easy
  arcade play pacman --config ./my-pacman.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML or TOML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// prepareGame applies per-game settings before a game is created. It returns
// false when the user backed out of a pre-game picker.
func prepareGame(gameID string, cfg core.RuntimeConfig) (bool, error) {
	if gameID != "pacman" {
		return true, nil
	}

	pacman.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		pacman.SetDifficultyPreset(flagDifficulty)
		return true, nil
	}

	preset, ok, err := tui.RunPacmanMenu(cfg)
	if err != nil || !ok {
		return false, err
	}
	pacman.SetDifficultyPreset(string(preset))
	return true, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := validateDifficulty(); err != nil {
		return err
	}

	cfg := terminalConfig()
	ok, err := prepareGame(gameID, cfg)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
