package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "gooze.dev/pkg/raygun/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	mode    StartMode
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the live progress view in test mode. In estimate mode the
// views are rendered on demand by the Display methods.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = cfg.mode
	if cfg.mode != ModeTest || p.program != nil {
		return nil
	}

	p.program = tea.NewProgram(newProgressModel(cfg.cancel), tea.WithOutput(p.output), tea.WithContext(ctx))
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(p.program, p.done)

	return nil
}

// Close stops the live view, if any, and waits for it to restore the terminal.
func (p *TUI) Close(ctx context.Context) {
	program, done := p.running()
	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Wait renders the final frame of the live view and waits for it to exit.
func (p *TUI) Wait(ctx context.Context) {
	program, done := p.running()
	if program == nil {
		return
	}

	program.Send(finishedMsg{})

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (p *TUI) running() (*tea.Program, chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.program, p.done
}

func (p *TUI) send(msg tea.Msg) bool {
	program, _ := p.running()
	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayEstimation shows the mutation sites per file.
func (p *TUI) DisplayEstimation(ctx context.Context, estimates []m.SiteEstimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		_, _ = fmt.Fprintf(p.output, "%s %v\n", errorStyle.Render("estimation error:"), err)
		return err
	}

	statsList, total := buildFileStats(estimates)

	lines := make([]string, 0, len(statsList))
	for _, stat := range statsList {
		lines = append(lines, fmt.Sprintf("%s: %s across %d operator(s)",
			stat.path, countStyle(stat.count).Render(fmt.Sprintf("%d mutants", stat.count)), stat.operators))
	}

	return p.page(newPagerModel("mutation sites", lines, []string{
		fmt.Sprintf("Total: %d mutants across %d file(s)", total, len(statsList)),
	}, "No source files found"))
}

// DisplayOperators lists the registered mutation operators.
func (p *TUI) DisplayOperators(ctx context.Context, operators []m.OperatorInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width := 0
	for _, op := range operators {
		width = max(width, len(op.Kind))
	}

	lines := make([]string, 0, len(operators))
	for _, op := range operators {
		lines = append(lines, fmt.Sprintf("%-*s  %s", width, op.Kind, dimStyle.Render(op.Description)))
	}

	return p.page(newPagerModel("operators", lines, []string{
		fmt.Sprintf("Total: %d operator(s)", len(operators)),
	}, "No operators registered"))
}

// DisplayBaseline shows the result of the unmutated test run.
func (p *TUI) DisplayBaseline(ctx context.Context, root m.Path, result m.TestResult) {
	if ctx.Err() != nil {
		return
	}

	if p.send(baselineMsg{root: root, result: result}) {
		return
	}

	_, _ = fmt.Fprint(p.output, renderBaseline(root, result))
}

// DisplayConcurrencyInfo shows concurrency settings.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if ctx.Err() != nil {
		return
	}

	p.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shardCount: shardCount})
}

// DisplayUpcomingTestsInfo sets the size of the progress bar.
func (p *TUI) DisplayUpcomingTestsInfo(ctx context.Context, total int) {
	if ctx.Err() != nil {
		return
	}

	p.send(upcomingMsg{total: total})
}

// DisplayStartingTestInfo marks a mutant as running.
func (p *TUI) DisplayStartingTestInfo(ctx context.Context, mutant m.Mutant) {
	if ctx.Err() != nil {
		return
	}

	p.send(startedMsg{mutant: mutant})
}

// DisplayCompletedTestInfo records a mutant's outcome.
func (p *TUI) DisplayCompletedTestInfo(ctx context.Context, mutant m.Mutant, report m.Report) {
	if ctx.Err() != nil {
		return
	}

	p.send(completedMsg{mutant: mutant, report: report})
}

// DisplayRunReport shows a stored run report.
func (p *TUI) DisplayRunReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	reports := append([]m.Report(nil), report.Reports...)
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Outcome < reports[j].Outcome
	})

	lines := make([]string, 0, len(reports))
	for _, r := range reports {
		lines = append(lines, fmt.Sprintf("%s %s:%d %s",
			outcomeStyle(r.Outcome).Render(fmt.Sprintf("%-11s", r.Outcome)),
			r.Source, r.Record.Line, dimStyle.Render(string(r.Record.Operator))))
	}

	score := report.Score

	return p.page(newPagerModel(fmt.Sprintf("run %s", shortID(report.RunID)), lines, []string{
		fmt.Sprintf("Command: %s", report.Command),
		renderScore(score),
	}, "No mutants in report"))
}

// DisplayMutationScore shows the final score.
func (p *TUI) DisplayMutationScore(ctx context.Context, score m.Score) {
	if ctx.Err() != nil {
		return
	}

	if p.send(scoreMsg{score: score}) {
		return
	}

	_, _ = fmt.Fprintln(p.output, renderScore(score))
}

// page prints short content directly and opens a scrollable view otherwise.
func (p *TUI) page(model pagerModel) error {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func renderBaseline(root m.Path, result m.TestResult) string {
	if result.Outcome == m.Survived {
		return fmt.Sprintf("  %s baseline %s (%s)\n", okStyle.Render("✓"), root, result.Duration.Round(time.Millisecond))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "  %s baseline %s: %s\n", errorStyle.Render("✗"), root, describeResult(result))

	if out := strings.TrimSpace(result.Output); out != "" {
		b.WriteString(dimStyle.Render(out))
		b.WriteString("\n")
	}

	return b.String()
}

func renderScore(score m.Score) string {
	return fmt.Sprintf("Score: %s  killed %d | survived %d | incompetent %d",
		titleStyle.Render(formatScore(score)),
		score.Killed, score.Survived, score.Incompetent)
}
