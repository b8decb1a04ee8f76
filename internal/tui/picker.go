// Package tui implements the interactive theme picker.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palettekit/palette"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B9AAE"))
)

// RunPicker launches the interactive picker against the given registry.
// Selecting an entry switches (and persists) the active theme.
func RunPicker(reg *palette.Registry) error {
	program := tea.NewProgram(initialModel(reg))
	_, err := program.Run()
	return err
}

type model struct {
	reg    *palette.Registry
	names  []string
	cursor int
	err    error
}

func initialModel(reg *palette.Registry) model {
	names := reg.AvailableNames()
	cursor := 0
	for i, name := range names {
		if name == reg.Active().Name {
			cursor = i
			break
		}
	}
	return model{reg: reg, names: names, cursor: cursor}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter":
		m.err = m.reg.SetActiveName(m.names[m.cursor])
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	s := titleStyle.Render("Pick a theme") + "\n\n"
	active := m.reg.Active().Name
	for i, name := range m.names {
		cursor := "  "
		line := name
		if name == active {
			line += " (active)"
		}
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		s += cursor + line + "\n"
	}
	s += "\n" + mutedStyle.Render("enter: select, q: quit") + "\n"
	return s
}
