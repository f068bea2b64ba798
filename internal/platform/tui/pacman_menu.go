package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// difficultyOption is one row of the Maze Chase difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	hint   string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy", "5 lives, long fright"},
	{config.DifficultyNormal, "Normal", "3 lives, ghosts speed up each level"},
	{config.DifficultyHard, "Hard", "2 lives, short scatter and fright"},
	{config.DifficultyFixed, "Fixed", "no progression between levels"},
}

// PacmanMenuModel lets users choose a difficulty preset before playing.
type PacmanMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewPacmanMenuModel creates a difficulty picker with Normal preselected.
func NewPacmanMenuModel(width, height int) PacmanMenuModel {
	return PacmanMenuModel{
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PacmanMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PacmanMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PacmanMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list.
func (m PacmanMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("M A Z E   C H A S E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, opt.label, opt.hint)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Arrows/WASD: steer  |  P/Space: pause  |  R: restart", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
func (m PacmanMenuModel) Selected() (config.DifficultyPreset, bool) {
	return m.selected, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m PacmanMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PacmanMenuModel) WantsBack() bool {
	return m.back
}

// RunPacmanMenu runs the difficulty picker. ok is false when the user
// backed out or quit.
func RunPacmanMenu(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewPacmanMenuModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := finalModel.(PacmanMenuModel)
	if !isMenu || m.IsQuitting() || m.WantsBack() {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
