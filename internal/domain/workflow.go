package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/raygun/internal/adapter"
	"gooze.dev/pkg/raygun/internal/controller"
	m "gooze.dev/pkg/raygun/internal/model"
	pkg "gooze.dev/pkg/raygun/pkg"
)

// ErrBaselineFailed is returned when the test command does not pass on the
// unmutated project.
var ErrBaselineFailed = errors.New("baseline test run failed")

// EstimateArgs selects the sources and operators of a run.
type EstimateArgs struct {
	Paths     []m.Path
	Exclude   []string
	Operators []m.OperatorKind // empty selects every registered operator
}

// TestArgs configures a mutation testing run.
type TestArgs struct {
	EstimateArgs
	Command      TestCommand
	Reports      m.Path
	Threads      int
	ShardIndex   int
	ShardCount   int
	SkipBaseline bool
}

// ViewArgs points at a stored run report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives the commands of the CLI.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Test(ctx context.Context, args TestArgs) error
	Baseline(ctx context.Context, args TestArgs) error
	View(ctx context.Context, args ViewArgs) error
	Operators(ctx context.Context) error
}

type workflow struct {
	fs           adapter.SourceFSAdapter
	goFiles      adapter.GoFileAdapter
	reports      adapter.ReportStore
	ui           controller.UI
	orchestrator Orchestrator
	streamer     MutationStreamer
	registry     *Registry
	logger       *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	streamer MutationStreamer,
	registry *Registry,
	logger *slog.Logger,
) Workflow {
	return &workflow{
		fs:           fsAdapter,
		goFiles:      goFileAdapter,
		reports:      reportStore,
		ui:           ui,
		orchestrator: orchestrator,
		streamer:     streamer,
		registry:     registry,
		logger:       logger,
	}
}

func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.ui.Start(ctx, controller.WithEstimateMode()); err != nil {
		w.logger.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	sources, specs, err := w.selection(ctx, args)

	var estimates []m.SiteEstimate
	if err == nil {
		estimates, err = w.estimate(ctx, sources, specs)
	}

	if displayErr := w.ui.DisplayEstimation(ctx, estimates, err); displayErr != nil && err == nil {
		w.logger.Error("Failed to display estimation", "error", displayErr)
		return fmt.Errorf("display: %w", displayErr)
	}

	if err != nil {
		w.logger.Error("Failed to estimate mutants", "error", err)
		return err
	}

	w.ui.Wait(ctx)

	return nil
}

func (w *workflow) Operators(ctx context.Context) error {
	specs := w.registry.Specs()

	infos := make([]m.OperatorInfo, 0, len(specs))
	for _, spec := range specs {
		infos = append(infos, spec.Info())
	}

	return w.ui.DisplayOperators(ctx, infos)
}

func (w *workflow) Baseline(ctx context.Context, args TestArgs) error {
	if err := validateCommand(args.Command); err != nil {
		return err
	}

	sources, err := w.fs.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	return w.runBaselines(ctx, sources, args.Command)
}

func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	if err := validateCommand(args.Command); err != nil {
		return err
	}

	sources, specs, err := w.selection(ctx, args.EstimateArgs)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(ctx, controller.WithTestMode(), controller.WithCancel(cancel)); err != nil {
		w.logger.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	if !args.SkipBaseline {
		if err := w.runBaselines(ctx, sources, args.Command); err != nil {
			return err
		}
	}

	startedAt := time.Now().UTC()

	total, err := w.countMutants(ctx, sources, specs)
	if err != nil {
		return err
	}

	threads := normalizeBufferSize(args.Threads)
	w.ui.DisplayConcurrencyInfo(ctx, threads, args.ShardIndex, args.ShardCount)
	w.ui.DisplayUpcomingTestsInfo(ctx, shardSize(total, args.ShardIndex, args.ShardCount))

	spill, err := pkg.NewFileSpill[m.Report](pkg.WithSpillLogger(w.logger))
	if err != nil {
		return fmt.Errorf("create report spill: %w", err)
	}

	defer func() {
		if closeErr := spill.Close(); closeErr != nil {
			w.logger.Error("Failed to close report spill", "error", closeErr)
		}
	}()

	if err := w.testMutants(ctx, sources, specs, args, spill); err != nil {
		return err
	}

	reports, score, err := collectReports(spill)
	if err != nil {
		return fmt.Errorf("collect reports: %w", err)
	}

	runReport := m.RunReport{
		RunID:      uuid.NewString(),
		StartedAt:  startedAt,
		Command:    args.Command.Command,
		ShardIndex: args.ShardIndex,
		ShardCount: args.ShardCount,
		Score:      score,
		Reports:    reports,
	}

	path, err := w.reports.SaveReport(args.Reports, runReport)
	if err != nil {
		w.logger.Error("Failed to save report", "dir", args.Reports, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	w.logger.Info("Mutation testing finished",
		"run", runReport.RunID,
		"report", path,
		"killed", score.Killed,
		"survived", score.Survived,
		"incompetent", score.Incompetent)

	w.ui.DisplayMutationScore(ctx, score)
	w.ui.Wait(ctx)

	return nil
}

// testMutants runs the oracle for every mutant of this shard and spills the
// reports. A workspace failure stops the run.
func (w *workflow) testMutants(ctx context.Context, sources []m.Source, specs []*Spec, args TestArgs, spill pkg.FileSpill[m.Report]) error {
	threads := normalizeBufferSize(args.Threads)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	mutants, errCh := w.streamer.Get(groupCtx, sources, specs, threads)
	sharded := w.streamer.ShardMutants(groupCtx, mutants, threads, args.ShardIndex, args.ShardCount)

	for mutant := range sharded {
		group.Go(func() error {
			w.ui.DisplayStartingTestInfo(groupCtx, mutant)

			report, err := w.orchestrator.TestMutant(groupCtx, mutant, args.Command)
			if err != nil {
				w.logger.Error("Failed to test mutant", "id", mutant.ID, "error", err)
				return fmt.Errorf("test mutant %s: %w", mutant.ID, err)
			}

			if err := spill.Append(report); err != nil {
				return fmt.Errorf("spill report: %w", err)
			}

			w.ui.DisplayCompletedTestInfo(groupCtx, mutant, report)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	// Drained channels leave the streamer's error, if any, buffered.
	for err := range errCh {
		if err != nil {
			return fmt.Errorf("generate mutants: %w", err)
		}
	}

	return ctx.Err()
}

// runBaselines runs the command once per distinct project root.
func (w *workflow) runBaselines(ctx context.Context, sources []m.Source, command TestCommand) error {
	var roots []m.Path

	for _, source := range sources {
		if !slices.Contains(roots, source.Root) {
			roots = append(roots, source.Root)
		}
	}

	for _, root := range roots {
		result := w.orchestrator.Baseline(ctx, root, command)
		w.ui.DisplayBaseline(ctx, root, result)

		if result.Outcome != m.Survived {
			w.logger.Error("Baseline failed", "root", root, "outcome", result.Outcome.String(), "cause", string(result.Cause))
			return fmt.Errorf("%w: %s in %s", ErrBaselineFailed, result.Outcome, root)
		}
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.reports.LoadReport(args.Reports)
	if err != nil {
		w.logger.Error("Failed to load report", "path", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.ui.DisplayRunReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.ui.DisplayMutationScore(ctx, report.Score)

	return nil
}

func (w *workflow) selection(ctx context.Context, args EstimateArgs) ([]m.Source, []*Spec, error) {
	specs, err := w.registry.Resolve(args.Operators...)
	if err != nil {
		return nil, nil, err
	}

	sources, err := w.fs.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return nil, nil, fmt.Errorf("get sources: %w", err)
	}

	return sources, specs, nil
}

// estimate counts the mutation sites of every operator in every source.
// Operators without sites in a file are left out.
func (w *workflow) estimate(ctx context.Context, sources []m.Source, specs []*Spec) ([]m.SiteEstimate, error) {
	var estimates []m.SiteEstimate

	for _, source := range sources {
		tree, err := w.parse(ctx, source)
		if err != nil {
			return nil, err
		}

		for _, spec := range specs {
			if sites := CountSites(tree, spec); sites > 0 {
				estimates = append(estimates, m.SiteEstimate{
					Source:   source.Origin.ShortPath,
					Operator: spec.Kind,
					Sites:    sites,
				})
			}
		}
	}

	return estimates, nil
}

func (w *workflow) countMutants(ctx context.Context, sources []m.Source, specs []*Spec) (int, error) {
	estimates, err := w.estimate(ctx, sources, specs)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, est := range estimates {
		total += est.Sites
	}

	return total, nil
}

func (w *workflow) parse(ctx context.Context, source m.Source) (*m.ProgramTree, error) {
	content, err := w.fs.ReadFile(source.Origin.FullPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source.Origin.ShortPath, err)
	}

	return w.goFiles.Parse(ctx, source.Origin.FullPath, content)
}

func validateCommand(command TestCommand) error {
	if strings.TrimSpace(command.Command) == "" {
		return errors.New("test command is empty")
	}

	return nil
}
