package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

// stubGame ends its run after a fixed number of steps.
type stubGame struct {
	steps   int
	endAt   int
	resets  int
	resized [2]int
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) Resize(w, h int)          { g.resized = [2]int{w, h} }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 10 * g.steps, GameOver: g.steps >= g.endAt}
}

func (g *stubGame) RunStats() core.RunStats {
	return core.RunStats{Level: 2, DotsEaten: g.steps, Duration: time.Duration(g.steps) * time.Second}
}

func sendModel(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{endAt: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	tick := TickMsg(time.Now())
	m = sendModel(t, m, tick, tick, tick, tick, tick)
	if !m.gameState.GameOver {
		t.Fatal("stub run should be over")
	}

	scores, err := store.AllScores("stub")
	if err != nil || len(scores) != 1 {
		t.Fatalf("AllScores() = %v, %v; expected one score", scores, err)
	}
	runs, err := store.RecentRuns("stub", 10)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns() = %v, %v; expected one run", runs, err)
	}
	if runs[0].Level != 2 || runs[0].Score != scores[0].Score {
		t.Errorf("run = %+v, score = %d", runs[0], scores[0].Score)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	m = sendModel(t, m, TickMsg(time.Now()), runeKey('r'))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be dropped while the run is live")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	m = sendModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resized != [2]int{120, 40} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, a resizable game should not be reset", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&stubGame{endAt: 100}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m = sendModel(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
