package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman"
)

var (
	flagSimTicks   int
	flagSimEvery   int
	flagSimSteer   int
	flagSimVerbose bool
	flagSimYAML    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run Maze Chase headless",
	Long: `Run Maze Chase without a terminal UI and print the final state.

Pacman steers in a random direction every --steer ticks. With the same
--seed, config and difficulty the run is fully reproducible.

Examples:
  arcade sim --ticks 3600 --seed 42
  arcade sim --ticks 600 --every 60 --verbose
  arcade sim --difficulty hard --yaml`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 0, "Print the state every N ticks (0 = only at the end)")
	simCmd.Flags().IntVar(&flagSimSteer, "steer", 45, "Pick a new random direction every N ticks")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log game events to stderr")
	simCmd.Flags().BoolVar(&flagSimYAML, "yaml", false, "Print the final snapshot as YAML")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML or TOML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// validateDifficulty rejects unknown --difficulty values up front.
func validateDifficulty() error {
	if flagDifficulty == "" {
		return nil
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return fmt.Errorf("--difficulty: %w", err)
	}
	return nil
}

// ghostReport is the YAML form of one ghost.
type ghostReport struct {
	Persona string `yaml:"persona"`
	Mode    string `yaml:"mode"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Dir     string `yaml:"dir"`
	Speed   int    `yaml:"speed"`
}

// simReport is the YAML form of a snapshot.
type simReport struct {
	Tick   uint64        `yaml:"tick"`
	Time   string        `yaml:"time"`
	State  string        `yaml:"state"`
	Level  int           `yaml:"level"`
	Score  int           `yaml:"score"`
	Lives  int           `yaml:"lives"`
	Dots   string        `yaml:"dots"`
	Pacman string        `yaml:"pacman"`
	Mode   string        `yaml:"mode"`
	Wave   int           `yaml:"wave"`
	Fruit  string        `yaml:"fruit,omitempty"`
	Ghosts []ghostReport `yaml:"ghosts"`
}

func newSimReport(s pacman.Snapshot) simReport {
	r := simReport{
		Tick:   s.Tick,
		Time:   s.Now.String(),
		State:  string(s.State),
		Level:  s.Level,
		Score:  s.Score,
		Lives:  s.Lives,
		Dots:   fmt.Sprintf("%d/%d", s.DotsEaten, s.DotsTotal),
		Pacman: fmt.Sprintf("(%d,%d) %s", s.PacX, s.PacY, s.PacDir),
		Mode:   s.Mode.String(),
		Wave:   s.Wave,
	}
	if s.FruitShow {
		r.Fruit = s.Fruit.String()
	}
	for _, g := range s.Ghosts {
		r.Ghosts = append(r.Ghosts, ghostReport{
			Persona: g.Persona.String(),
			Mode:    g.Mode.String(),
			X:       g.X,
			Y:       g.Y,
			Dir:     g.Dir.String(),
			Speed:   g.Speed,
		})
	}
	return r
}

var steerActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

func runSim(_ *cobra.Command, _ []string) error {
	if err := validateDifficulty(); err != nil {
		return err
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if flagSimVerbose {
		pacman.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "sim",
			Level:           log.DebugLevel,
		}))
	}
	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)

	game := pacman.New()
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	steer := rand.New(rand.NewSource(seed))
	input := core.NewInputFrame()
	for tick := 1; tick <= flagSimTicks; tick++ {
		input.Clear()
		if flagSimSteer > 0 && tick%flagSimSteer == 0 {
			input.Set(steerActions[steer.Intn(len(steerActions))])
		}
		result := game.Step(input)

		if flagSimEvery > 0 && tick%flagSimEvery == 0 {
			fmt.Print(game.DebugState())
			fmt.Println()
		}
		if result.State.GameOver {
			break
		}
	}

	if flagSimYAML {
		out, err := yaml.Marshal(newSimReport(game.Snapshot()))
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Printf("seed: %d\n", seed)
	fmt.Print(game.DebugState())
	stats := game.RunStats()
	fmt.Printf("Run: level %d, %d dots, %d ghosts, %v\n",
		stats.Level, stats.DotsEaten, stats.GhostsEaten, stats.Duration)
	return nil
}
