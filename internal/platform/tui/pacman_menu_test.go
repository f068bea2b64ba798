package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-arcade/internal/config"
)

func pressMenu(m PacmanMenuModel, msgs ...tea.KeyMsg) PacmanMenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(PacmanMenuModel)
	}
	return m
}

func TestPacmanMenuDefaultsToNormal(t *testing.T) {
	m := pressMenu(NewPacmanMenuModel(80, 24), tea.KeyMsg{Type: tea.KeyEnter})
	preset, ok := m.Selected()
	if !ok || preset != config.DifficultyNormal {
		t.Errorf("Selected() = %q, %v; expected normal", preset, ok)
	}
}

func TestPacmanMenuNavigation(t *testing.T) {
	m := NewPacmanMenuModel(80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing should be selected yet")
	}

	m = pressMenu(m, runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})
	if preset, _ := m.Selected(); preset != config.DifficultyFixed {
		t.Errorf("cursor past the end selected %q, expected fixed", preset)
	}

	m = pressMenu(NewPacmanMenuModel(80, 24), runeKey('k'), runeKey('k'), tea.KeyMsg{Type: tea.KeyEnter})
	if preset, _ := m.Selected(); preset != config.DifficultyEasy {
		t.Errorf("selected %q, expected easy", preset)
	}
}

func TestPacmanMenuBackAndView(t *testing.T) {
	m := NewPacmanMenuModel(80, 24)
	view := m.View()
	for _, want := range []string{"M A Z E", "Easy", "Hard", "> Normal"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("Esc should go back")
	}
	if _, ok := m.Selected(); ok {
		t.Error("going back must not select a preset")
	}
}
