package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	m "gooze.dev/pkg/raygun/internal/model"
)

const (
	progressWidth = 50
	maxSurvivors  = 5
)

type (
	baselineMsg struct {
		root   m.Path
		result m.TestResult
	}
	concurrencyMsg struct {
		threads, shardIndex, shardCount int
	}
	upcomingMsg struct {
		total int
	}
	startedMsg struct {
		mutant m.Mutant
	}
	completedMsg struct {
		mutant m.Mutant
		report m.Report
	}
	scoreMsg struct {
		score m.Score
	}
	finishedMsg struct{}
)

// progressModel renders a running mutation test session.
type progressModel struct {
	bar       progress.Model
	cancel    context.CancelFunc
	baselines []string
	threads   int
	shard     string
	total     int
	completed int
	running   map[string]m.Mutant
	survivors []string
	tally     m.Score
	final     *m.Score
	aborted   bool
	finished  bool
}

func newProgressModel(cancel context.CancelFunc) progressModel {
	return progressModel{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		cancel:  cancel,
		running: make(map[string]m.Mutant),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return nil
}

//nolint:cyclop // one case per message type
func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			pm.aborted = true
			if pm.cancel != nil {
				pm.cancel()
			}

			return pm, tea.Quit
		}
	case baselineMsg:
		pm.baselines = append(pm.baselines, renderBaseline(msg.root, msg.result))
	case concurrencyMsg:
		pm.threads = msg.threads
		pm.shard = fmt.Sprintf("%d/%d", msg.shardIndex, msg.shardCount)
	case upcomingMsg:
		pm.total = msg.total
	case startedMsg:
		pm.running[msg.mutant.ID] = msg.mutant
	case completedMsg:
		delete(pm.running, msg.mutant.ID)
		pm.completed++
		pm.tally.Add(msg.report.Outcome)

		if msg.report.Outcome == m.Survived {
			pm.survivors = append(pm.survivors, fmt.Sprintf("%s:%d %s",
				msg.report.Source, msg.report.Record.Line, msg.report.Record.Operator))
			if len(pm.survivors) > maxSurvivors {
				pm.survivors = pm.survivors[len(pm.survivors)-maxSurvivors:]
			}
		}
	case scoreMsg:
		score := msg.score
		pm.final = &score
	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total == 0 {
		return 0
	}

	return float64(pm.completed) / float64(pm.total)
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader())

	for _, line := range pm.baselines {
		b.WriteString(line)
	}

	if pm.threads > 0 {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d worker(s), shard %s", pm.threads, pm.shard)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %d/%d\n\n", pm.bar.ViewAs(pm.percent()), pm.completed, pm.total)

	fmt.Fprintf(&b, "  %s %d  %s %d  %s %d\n",
		okStyle.Render("killed"), pm.tally.Killed,
		errorStyle.Render("survived"), pm.tally.Survived,
		warnStyle.Render("incompetent"), pm.tally.Incompetent)

	if !pm.finished && len(pm.running) > 0 {
		b.WriteString("\n")

		for _, line := range pm.runningLines() {
			fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("running"), line)
		}
	}

	if len(pm.survivors) > 0 {
		fmt.Fprintf(&b, "\n  %s\n", errorStyle.Render("recent survivors:"))

		for _, line := range pm.survivors {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	if pm.final != nil {
		fmt.Fprintf(&b, "\n  %s\n", renderScore(*pm.final))
	}

	if pm.aborted {
		fmt.Fprintf(&b, "\n  %s\n", warnStyle.Render("aborted"))
	} else if !pm.finished {
		fmt.Fprintf(&b, "\n  %s\n", dimStyle.Render(helpLine(keys.Quit)))
	}

	return b.String()
}

func (pm progressModel) runningLines() []string {
	lines := make([]string, 0, len(pm.running))
	for _, mutant := range pm.running {
		lines = append(lines, fmt.Sprintf("%s %s", mutantLocation(mutant), mutant.Record.Operator))
	}

	sort.Strings(lines)

	return lines
}
