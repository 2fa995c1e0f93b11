package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerReservedLines covers the header box, title, footer and help rows.
const pagerReservedLines = 12

// pagerModel is a scrollable list with a title and summary footer.
type pagerModel struct {
	title    string
	lines    []string
	footer   []string
	empty    string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines []string, footer []string, empty string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  lines,
		footer: footer,
		empty:  empty,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, keys.Down):
		pm.offset++
	case key.Matches(msg, keys.Up):
		pm.offset--
	case key.Matches(msg, keys.Top):
		pm.offset = 0
	case key.Matches(msg, keys.Bottom):
		pm.offset = pm.maxOffset()
	case key.Matches(msg, keys.PgDown):
		pm.offset += pm.itemsPerPage()
	case key.Matches(msg, keys.PgUp):
		pm.offset -= pm.itemsPerPage()
	}

	pm.offset = max(0, min(pm.offset, pm.maxOffset()))

	return pm, nil
}

// itemsPerPage calculates how many items can fit on screen.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	return max(1, pm.height-pagerReservedLines-len(pm.footer))
}

func (pm pagerModel) maxOffset() int {
	return max(0, len(pm.lines)-pm.itemsPerPage())
}

// needsPagination returns true if the list is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader())

	if len(pm.lines) == 0 {
		fmt.Fprintf(&b, "  %s\n", pm.empty)
		return b.String()
	}

	fmt.Fprintf(&b, "  %s:\n\n", titleStyle.Render(pm.title))

	start, end := 0, len(pm.lines)

	paginated := pm.needsPagination()
	if paginated {
		start = pm.offset
		end = min(start+pm.itemsPerPage(), len(pm.lines))
	}

	for _, line := range pm.lines[start:end] {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if len(pm.footer) > 0 {
		b.WriteString("\n")
	}

	for _, line := range pm.footer {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if paginated {
		perPage := pm.itemsPerPage()
		totalPages := (len(pm.lines) + perPage - 1) / perPage

		b.WriteString("\n")
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n",
			pm.offset/perPage+1, totalPages, start+1, end, len(pm.lines))
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(helpLine(keys.Up, keys.Down, keys.Top, keys.Bottom, keys.Quit)))
	}

	return b.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}

	return strings.Join(parts, " | ")
}
