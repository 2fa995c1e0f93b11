package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/raygun/internal/model"
)

const shortIDLength = 8

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(context.Context) {}

// DisplayEstimation prints the estimation results or error.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimates []m.SiteEstimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	statsList, total := buildFileStats(estimates)
	s.printf("\n%s", renderEstimationTable(statsList, total))

	return nil
}

type fileStat struct {
	path      string
	operators int
	count     int
}

func buildFileStats(estimates []m.SiteEstimate) ([]fileStat, int) {
	info := make(map[m.Path]fileStat)
	total := 0

	for _, est := range estimates {
		stat := info[est.Source]
		stat.path = string(est.Source)

		if est.Sites > 0 {
			stat.operators++
		}

		stat.count += est.Sites
		info[est.Source] = stat
		total += est.Sites
	}

	statsList := make([]fileStat, 0, len(info))
	for _, stat := range info {
		statsList = append(statsList, stat)
	}

	sort.Slice(statsList, func(i, j int) bool {
		return statsList[i].path < statsList[j].path
	})

	return statsList, total
}

func renderEstimationTable(statsList []fileStat, totalMutants int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Operators", "Mutants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, stat := range statsList {
		table.Append([]string{stat.path, fmt.Sprintf("%d", stat.operators), fmt.Sprintf("%d", stat.count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(statsList)),
		"",
		fmt.Sprintf("%d", totalMutants),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayOperators prints the registered mutation operators.
func (s *SimpleUI) DisplayOperators(ctx context.Context, operators []m.OperatorInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderOperatorsTable(operators))

	return nil
}

func renderOperatorsTable(operators []m.OperatorInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Operator", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, op := range operators {
		table.Append([]string{string(op.Kind), op.Description})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayBaseline shows the result of the unmutated test run.
func (s *SimpleUI) DisplayBaseline(ctx context.Context, root m.Path, result m.TestResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Outcome == m.Survived {
		s.printf("Baseline %s: tests pass (%s)\n", root, result.Duration.Round(time.Millisecond))
		return
	}

	s.printf("Baseline %s: %s\n", root, describeResult(result))

	if out := strings.TrimSpace(result.Output); out != "" {
		s.printf("%s\n", out)
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running with %d worker(s) (Shard %d/%d)\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingTestsInfo shows the number of upcoming mutants to be tested.
func (s *SimpleUI) DisplayUpcomingTestsInfo(ctx context.Context, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Upcoming mutants: %d\n", total)
}

// DisplayStartingTestInfo shows info about the mutant test starting.
func (s *SimpleUI) DisplayStartingTestInfo(ctx context.Context, mutant m.Mutant) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("Starting mutant %s (%s) %s\n", shortID(mutant.ID), mutant.Record.Operator, mutantLocation(mutant))
}

// DisplayCompletedTestInfo shows info about the mutant test completion.
func (s *SimpleUI) DisplayCompletedTestInfo(ctx context.Context, mutant m.Mutant, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("Completed mutant %s (%s) -> %s\n", shortID(mutant.ID), mutant.Record.Operator, describeReport(report))

	if report.Outcome != m.Killed && report.Diff != "" {
		s.printf("%s\n", report.Diff)
	}
}

// DisplayRunReport prints a stored run report.
func (s *SimpleUI) DisplayRunReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Run %s (%s) started %s\n", report.RunID, report.Command, report.StartedAt.Format("2006-01-02 15:04:05"))
	s.printf("\n%s", renderReportsTable(report.Reports))

	for _, r := range report.Reports {
		if r.Outcome == m.Survived && r.Diff != "" {
			s.printf("\n%s:%d %s\n%s", r.Source, r.Record.Line, r.Record.Description, r.Diff)
		}
	}

	return nil
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Location", "Operator", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, r := range reports {
		table.Append([]string{
			shortID(r.MutantID),
			fmt.Sprintf("%s:%d", r.Source, r.Record.Line),
			string(r.Record.Operator),
			describeReport(r),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayMutationScore prints the final mutation score.
func (s *SimpleUI) DisplayMutationScore(ctx context.Context, score m.Score) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Killed: %d | Survived: %d | Incompetent: %d\n", score.Killed, score.Survived, score.Incompetent)
	s.printf("Mutation score: %s\n", formatScore(score))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// formatScore renders the score as a percentage, or "n/a" when no mutant was
// judged.
func formatScore(score m.Score) string {
	value, ok := score.Value()
	if !ok {
		return "n/a"
	}

	return fmt.Sprintf("%.2f%%", value*100)
}

func shortID(id string) string {
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}

	return id
}

func mutantLocation(mutant m.Mutant) string {
	if mutant.Source.Origin == nil {
		return fmt.Sprintf("line %d", mutant.Record.Line)
	}

	return fmt.Sprintf("%s:%d", mutant.Source.Origin.ShortPath, mutant.Record.Line)
}

func describeReport(report m.Report) string {
	if report.Outcome == m.Incompetent && report.Cause != m.CauseNone {
		return fmt.Sprintf("%s (%s)", report.Outcome, report.Cause)
	}

	return report.Outcome.String()
}

func describeResult(result m.TestResult) string {
	return describeReport(m.Report{Outcome: result.Outcome, Cause: result.Cause})
}
