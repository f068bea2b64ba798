package pacman

import (
	"time"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman/ghost"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// GhostSnapshot is one ghost's observable state.
type GhostSnapshot struct {
	Persona ghost.Persona
	Mode    ghost.Mode
	X, Y    int // Pixels
	Dir     maze.Direction
	Speed   int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Now       time.Duration
	Level     int // 1-indexed
	Score     int
	Lives     int
	DotsEaten int // Current level
	DotsTotal int
	PacX      int // Pixels
	PacY      int
	PacDir    maze.Direction
	Mode      ghost.Mode
	Wave      int
	Ghosts    [ghost.PersonaCount]GhostSnapshot
	Fruit     maze.FruitKind
	FruitShow bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	pm := g.pac.Motion()
	sched := g.ghosts.Scheduler()
	fruit, shown := g.fruits.Visible()

	s := Snapshot{
		Tick:      g.tick,
		Now:       g.now,
		Level:     g.level.Number(),
		Score:     g.score,
		Lives:     g.lives,
		DotsEaten: g.level.Eaten(),
		DotsTotal: g.level.Total(),
		PacX:      pm.X,
		PacY:      pm.Y,
		PacDir:    pm.Dir,
		Mode:      sched.Mode(),
		Wave:      sched.Wave(),
		Fruit:     fruit,
		FruitShow: shown,
		State:     state,
	}
	for i, gh := range g.ghosts.Ghosts() {
		m := gh.Motion()
		s.Ghosts[i] = GhostSnapshot{
			Persona: gh.Persona(),
			Mode:    gh.Mode(),
			X:       m.X,
			Y:       m.Y,
			Dir:     m.Dir,
			Speed:   m.Speed,
		}
	}
	return s
}
