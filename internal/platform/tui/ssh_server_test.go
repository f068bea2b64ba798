package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-arcade/internal/core"
	_ "github.com/vovakirdan/maze-arcade/internal/games/pacman"
)

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(SessionModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestSessionGameAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, cfg, "tester")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inGame || m.gameModel == nil {
		t.Fatal("Enter on the menu should start the game")
	}

	tick := TickMsg(time.Now())
	m = sendSession(t, m, tick, runeKey('p'), tick)
	if !m.gameModel.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m = sendSession(t, m, runeKey('b'))
	if m.inGame || m.gameModel != nil {
		t.Error("b on a paused game should return to the menu")
	}
	if m.quitting {
		t.Error("going back must not end the session")
	}
}

func TestSessionBackIgnoredWhilePlaying(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := sendSession(t, NewSessionModel(nil, cfg, "tester"), tea.KeyMsg{Type: tea.KeyEnter})

	tick := TickMsg(time.Now())
	m = sendSession(t, m, tick, runeKey('b'), tick)
	if !m.inGame {
		t.Error("b during play should not leave the game")
	}
}

func TestSessionScoreboard(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, cfg, "tester")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil || m.quitting {
		t.Error("Esc should close the scoreboard and keep the session")
	}
	if m.menu.WantsScoreboard() {
		t.Error("menu should be fresh after the scoreboard")
	}
}
