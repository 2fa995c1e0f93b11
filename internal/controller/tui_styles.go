package controller

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/raygun/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.DoubleBorder()).Padding(0, 2)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func outcomeStyle(outcome m.TestOutcome) lipgloss.Style {
	switch outcome {
	case m.Killed:
		return okStyle
	case m.Survived:
		return errorStyle
	default:
		return warnStyle
	}
}

func countStyle(n int) lipgloss.Style {
	if n == 0 {
		return dimStyle
	}

	return lipgloss.NewStyle()
}

type keyMap struct {
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	PgDown key.Binding
	PgUp   key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PgDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
	PgUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
}

func renderHeader() string {
	return headerStyle.Render("Raygun - Mutation Testing") + "\n\n"
}
