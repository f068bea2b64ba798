// Package pacman implements Maze Chase: Pacman clears a fixed maze of dots
// while four ghosts hunt him under a shared timed mode schedule.
package pacman

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/ghost"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/signal"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

// Ghost combo scores for one fright: 200, 400, 800, then 1600 for every
// further ghost.
const (
	ghostBaseScore = 200
	ghostMaxScore  = 1600
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives game and ghost debug output. Discarded unless set.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game logs to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements Maze Chase.
type Game struct {
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	// Simulated clock. Every Step advances now by frame; the logic only runs
	// once more than gate has passed since lastLogic.
	now       time.Duration
	lastLogic time.Duration
	frame     time.Duration
	gate      time.Duration

	signals *signal.Dispatcher
	grid    *maze.Grid
	level   *Level
	pac     *Pacman
	ghosts  *ghost.Coordinator
	fruits  *FruitManager

	score       int
	lives       int
	combo       int // Ghosts eaten during the current fright
	dotsEaten   int // Whole run
	ghostsEaten int // Whole run

	// Screen dimensions
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// New creates a Maze Chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pacman" }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Chase" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(rc, cfg)
}

// ResetWith initializes the game from an explicit configuration.
func (g *Game) ResetWith(rc core.RuntimeConfig, cfg config.PacmanConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.gate = time.Duration(cfg.Gameplay.LogicGateMs) * time.Millisecond
	g.now = 0
	g.lastLogic = 0

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.combo = 0
	g.dotsEaten = 0
	g.ghostsEaten = 0
	g.gameOver = false
	g.levelCleared = false
	g.paused = false
	g.levelClearTicks = 0

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.layout()

	g.signals = signal.New()
	g.grid = maze.NewGrid()
	g.level = NewLevel(g.grid, g.signals)
	g.pac = NewPacman(cfg.Speeds.Pacman)
	g.ghosts = ghost.NewCoordinator(g.grid, g.rng, g.signals, g.ghostConfig(1), ghost.WithLogger(logger))
	g.fruits = NewFruitManager(g.grid, g.signals, g.rng.Float64, cfg.Fruit.AppearAfter(), cfg.Fruit.Visible())

	signal.Subscribe(g.signals, g.onPelletEaten)
	signal.Subscribe(g.signals, g.onLevelFinished)

	g.startLevel(1)
}

// layout centers the maze below the HUD.
func (g *Game) layout() {
	const hudHeight = 2
	mapW := maze.Width * cellWidth
	g.tooSmall = g.screenW < mapW || g.screenH < maze.Height+hudHeight
	g.mapOffsetX = max((g.screenW-mapW)/2, 0)
	g.mapOffsetY = hudHeight
}

// Resize re-centers the maze for a new window size without restarting the
// run. A window that is too small freezes the game until it grows again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// ghostConfig builds the coordinator settings for a level, scaled by the
// difficulty progression.
func (g *Game) ghostConfig(level int) ghost.Config {
	m := g.cfg.Modes
	return ghost.Config{
		Durations: ghost.Durations{
			Chase:         m.Chase(),
			Scatter:       g.difficulty.Scatter(m.Scatter(), level),
			LateScatter:   g.difficulty.Scatter(m.LateScatter(), level),
			Frightened:    g.difficulty.Frightened(m.Frightened(), level),
			MaxWaves:      m.MaxWaves,
			LateAfterWave: m.LateScatterAfterWave,
		},
		Speeds: ghost.Speeds{
			Normal:      g.cfg.Speeds.Ghost,
			Frightened:  g.cfg.Speeds.GhostFrightened,
			OutFromHome: g.cfg.Speeds.GhostOutFromHome,
		},
		InkyDots:     g.cfg.House.InkyDots,
		ClydeDivisor: g.cfg.House.ClydeDivisor,
	}
}

// startLevel refills the maze and puts every agent on its spawn.
func (g *Game) startLevel(n int) {
	g.level.Start(n)
	g.ghosts.Configure(g.ghostConfig(n))
	g.ghosts.Start(g.now)
	g.pac.Reset()
	g.fruits.Start(g.now)
	g.combo = 0
	g.levelCleared = false
	g.levelClearTicks = 0
	logger.Info("level started", "level", n, "dots", g.level.Total())
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.ResetWith(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.frame),
		}, g.cfg)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared pause
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Gameplay.LevelClearTicks {
			g.startLevel(g.level.Number() + 1)
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.now += g.frame
	if g.now-g.lastLogic > g.gate {
		g.lastLogic = g.now
		g.logicTick()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers Pacman's next direction.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.pac.Turn(maze.DirUp)
	case input.Has(core.ActionDown):
		g.pac.Turn(maze.DirDown)
	case input.Has(core.ActionLeft):
		g.pac.Turn(maze.DirLeft)
	case input.Has(core.ActionRight):
		g.pac.Turn(maze.DirRight)
	}
}

// logicTick moves Pacman, eats, moves the ghosts and resolves contact.
func (g *Game) logicTick() {
	if tile, ok := g.pac.Move(g.grid); ok {
		g.eat(tile)
	}
	if g.levelCleared {
		return
	}

	// Contact is checked on both sides of the ghost move so that a ghost and
	// Pacman crossing each other between tiles still meet.
	if g.checkContact() {
		return
	}
	g.ghosts.Tick(g.now, ghost.PacmanView{Tile: g.pac.Tile(), Dir: g.pac.Direction()})
	if g.checkContact() {
		return
	}
	g.fruits.Update(g.now)
}

func (g *Game) eat(tile maze.Point) {
	o := g.level.Eat(tile, g.now)
	g.score += o.Score()
	if o.CountsForLevel() {
		g.dotsEaten++
	}
	if o.Kind == maze.Fruit {
		logger.Debug("fruit eaten", "fruit", o.Fruit, "score", o.Score())
	}
}

// checkContact resolves every ghost sharing Pacman's tile. Reports whether
// Pacman died.
func (g *Game) checkContact() bool {
	for _, p := range g.ghosts.GhostsAt(g.pac.Tile()) {
		if g.ghosts.Ghost(p).Mode() == ghost.ModeFrightened {
			g.combo++
			g.ghostsEaten++
			g.score += ghostScore(g.combo)
			g.ghosts.SendHome(p)
			continue
		}
		g.loseLife(p)
		return true
	}
	return false
}

func ghostScore(combo int) int {
	if combo < 1 {
		return 0
	}
	if combo > 4 {
		return ghostMaxScore
	}
	return ghostBaseScore << (combo - 1)
}

func (g *Game) loseLife(by ghost.Persona) {
	g.lives--
	g.combo = 0
	logger.Info("pacman caught", "ghost", by, "lives", g.lives, "level", g.level.Number())
	if g.lives <= 0 {
		g.gameOver = true
		logger.Info("game over", "score", g.score, "level", g.level.Number())
		return
	}
	g.pac.Reset()
	g.ghosts.Restart(g.now)
}

func (g *Game) onPelletEaten(signal.PelletEaten) {
	g.combo = 0
}

func (g *Game) onLevelFinished(s signal.LevelFinished) {
	g.levelCleared = true
	g.levelClearTicks = 0
	logger.Info("level cleared", "level", s.Level, "score", g.score, "at", s.At)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunStats summarizes the run for the score table.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Level:       g.level.Number(),
		DotsEaten:   g.dotsEaten,
		GhostsEaten: g.ghostsEaten,
		Duration:    g.now,
	}
}

// Now returns the simulated clock.
func (g *Game) Now() time.Duration { return g.now }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Signals exposes the game's dispatcher so callers can observe it.
func (g *Game) Signals() *signal.Dispatcher { return g.signals }

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Now: %v, Score: %d, Level: %d, Lives: %d\n",
		g.tick, g.now, g.score, g.level.Number(), g.lives)
	fmt.Fprintf(&b, "Pacman: %v dir=%s next=%s, Dots: %d/%d\n",
		g.pac.Tile(), g.pac.Direction(), g.pac.Next(), g.level.Eaten(), g.level.Total())
	sched := g.ghosts.Scheduler()
	fmt.Fprintf(&b, "Mode: %s, Wave: %d\n", sched.Mode(), sched.Wave())
	for _, gh := range g.ghosts.Ghosts() {
		fmt.Fprintf(&b, "  %-6s %-13s %v dir=%s speed=%d\n",
			gh.Persona(), gh.Mode(), gh.Tile(), gh.Direction(), gh.Speed())
	}
	fmt.Fprintf(&b, "GameOver: %v, LevelCleared: %v, Paused: %v\n", g.gameOver, g.levelCleared, g.paused)
	return b.String()
}
