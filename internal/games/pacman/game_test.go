package pacman

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/ghost"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/motion"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}, config.DefaultPacmanConfig())
	return g
}

// placePacman teleports Pacman onto a tile.
func placePacman(g *Game, p maze.Point) {
	g.pac.motion = motion.At(p, maze.DirRight, g.cfg.Speeds.Pacman)
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("pacman") {
		t.Fatal("pacman is not registered")
	}
	g, err := registry.Create("pacman")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Maze Chase" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.RunReporter); !ok {
		t.Error("pacman should report run stats")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	// Run both games with same inputs
	script := map[int]core.Action{
		20:   core.ActionLeft,
		200:  core.ActionUp,
		400:  core.ActionRight,
		700:  core.ActionDown,
		1100: core.ActionLeft,
		1600: core.ActionUp,
	}
	input := core.NewInputFrame()
	for i := range 3000 {
		input.Clear()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)

		if i%500 == 0 && g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("snapshots diverged at step %d:\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("final snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSimulatedClockAndGate(t *testing.T) {
	g := newTestGame(t, 1)
	input := core.NewInputFrame()
	for range 60 {
		g.Step(input)
	}
	if want := 60 * (time.Second / 60); g.Now() != want {
		t.Errorf("Now() = %v, expected %v", g.Now(), want)
	}

	// With a 20ms gate at 60 ticks per second only every other step runs logic.
	cfg := config.DefaultPacmanConfig()
	cfg.Gameplay.LogicGateMs = 20
	g = New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, cfg)
	for range 4 {
		g.Step(input)
	}
	if x := g.Snapshot().PacX; x != 7*motion.TileSize+4 {
		t.Errorf("PacX = %d, expected two moves of 2px", x)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t, 1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	none := core.NewInputFrame()

	g.Step(pause)
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("game should be paused")
	}
	for range 30 {
		g.Step(none)
	}
	if g.Now() != 0 {
		t.Errorf("clock advanced while paused: %v", g.Now())
	}
	g.Step(pause)
	g.Step(none)
	if g.Now() == 0 {
		t.Error("clock did not resume")
	}
}

func TestEatingDot(t *testing.T) {
	g := newTestGame(t, 1)
	input := core.NewInputFrame()
	for range 16 {
		g.Step(input)
	}
	s := g.Snapshot()
	if s.Score != maze.DotScore || s.DotsEaten != 1 {
		t.Errorf("score=%d dots=%d, expected one dot eaten", s.Score, s.DotsEaten)
	}
}

func TestPelletAndGhostCombo(t *testing.T) {
	g := newTestGame(t, 1)

	g.eat(maze.Point{X: 1, Y: 2})
	if g.score != maze.PowerPelletScore {
		t.Errorf("score = %d after pellet", g.score)
	}
	if g.ghosts.Scheduler().Mode() != ghost.ModeFrightened {
		t.Fatalf("global mode = %s, expected frightened", g.ghosts.Scheduler().Mode())
	}
	blinky := g.ghosts.Ghost(ghost.Blinky)
	if blinky.Mode() != ghost.ModeFrightened {
		t.Fatalf("Blinky mode = %s, expected frightened", blinky.Mode())
	}

	placePacman(g, blinky.Tile())
	if died := g.checkContact(); died {
		t.Fatal("touching a frightened ghost killed Pacman")
	}
	if g.score != maze.PowerPelletScore+200 {
		t.Errorf("score = %d, expected pellet + 200", g.score)
	}
	if blinky.Mode() != ghost.ModeOutFromHome || blinky.Tile() != maze.HouseCenter {
		t.Errorf("Blinky %s at %v, expected out_from_home at the house center", blinky.Mode(), blinky.Tile())
	}
	if g.RunStats().GhostsEaten != 1 {
		t.Errorf("GhostsEaten = %d", g.RunStats().GhostsEaten)
	}
}

func TestGhostScore(t *testing.T) {
	tests := []struct{ combo, want int }{
		{0, 0}, {1, 200}, {2, 400}, {3, 800}, {4, 1600}, {5, 1600},
	}
	for _, tt := range tests {
		if got := ghostScore(tt.combo); got != tt.want {
			t.Errorf("ghostScore(%d) = %d, expected %d", tt.combo, got, tt.want)
		}
	}
}

func TestLosingLives(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.Lives()

	for i := 1; i <= lives; i++ {
		blinky := g.ghosts.Ghost(ghost.Blinky)
		placePacman(g, blinky.Tile())
		if !g.checkContact() {
			t.Fatalf("contact %d did not kill Pacman", i)
		}
		if g.Lives() != lives-i {
			t.Errorf("Lives() = %d, expected %d", g.Lives(), lives-i)
		}
		if i < lives && g.pac.Tile() != maze.PacmanStart {
			t.Errorf("Pacman not reset: %v", g.pac.Tile())
		}
	}

	if !g.State().GameOver || g.Snapshot().State != StateGameOver {
		t.Fatal("expected game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().GameOver || g.Lives() != lives || g.State().Score != 0 {
		t.Errorf("restart: gameOver=%v lives=%d score=%d", g.State().GameOver, g.Lives(), g.State().Score)
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g := newTestGame(t, 1)
	for y := range maze.Height {
		for x := range maze.Width {
			g.eat(maze.Point{X: x, Y: y})
		}
	}
	if g.Snapshot().State != StateLevelCleared {
		t.Fatalf("state = %s, expected level_cleared", g.Snapshot().State)
	}

	input := core.NewInputFrame()
	for range g.cfg.Gameplay.LevelClearTicks {
		g.Step(input)
	}
	s := g.Snapshot()
	if s.State != StatePlaying || s.Level != 2 {
		t.Fatalf("state = %s level = %d, expected playing level 2", s.State, s.Level)
	}
	if s.DotsEaten != 0 || s.DotsTotal != 185 {
		t.Errorf("maze not refilled: %d/%d", s.DotsEaten, s.DotsTotal)
	}
	stats := g.RunStats()
	if stats.Level != 2 || stats.DotsEaten != 185 {
		t.Errorf("RunStats() = %+v", stats)
	}
	if !g.ghosts.Released(ghost.Pinky) || g.ghosts.Released(ghost.Inky) {
		t.Error("house releases not reset for the new level")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD = %q", hud)
	}
	out := screen.String()
	for _, want := range []string{"██", "·", "●", "ᗧ", "ᗣ"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}
	if c := screen.GetCell(g.mapOffsetX+1*cellWidth, g.mapOffsetY+2); c.Rune != '●' || c.Color != core.ColorBrightWhite {
		t.Errorf("pellet cell = %+v", c)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, config.DefaultPacmanConfig())
	g.Step(core.NewInputFrame())
	if g.Snapshot().State != StatePausedSmall || g.Now() != 0 {
		t.Errorf("state=%s now=%v, expected a frozen small-window game", g.Snapshot().State, g.Now())
	}
	g.Render(core.NewScreen(20, 10))
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, 1)
	g.score = 500

	g.Resize(20, 10)
	g.Step(core.NewInputFrame())
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %s after shrinking", g.Snapshot().State)
	}

	g.Resize(100, 30)
	if g.Snapshot().State != StatePlaying || g.score != 500 {
		t.Errorf("state=%s score=%d, expected the run to continue", g.Snapshot().State, g.score)
	}
	if g.mapOffsetX != (100-maze.Width*cellWidth)/2 {
		t.Errorf("mapOffsetX = %d", g.mapOffsetX)
	}
}
