package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"gooze.dev/pkg/raygun/internal/adapter"
	m "gooze.dev/pkg/raygun/internal/model"
)

// maxReportOutput bounds the test output kept per report. The tail is kept
// since that is where test runners print failures and summaries.
const maxReportOutput = 8 << 10

// TestCommand is the shell command the test oracle runs for every mutant.
type TestCommand struct {
	Command string
	Timeout time.Duration // <= 0 disables the timeout
}

// Orchestrator coordinates installing a mutant into a temporary copy of
// the project and running the test command to decide whether the mutant is
// killed, survives or cannot be judged.
type Orchestrator interface {
	// TestMutant returns an error only for workspace failures. Test run
	// failures are part of the report.
	TestMutant(ctx context.Context, mutant m.Mutant, command TestCommand) (m.Report, error)
	// Baseline runs the command against the unmodified project at root.
	Baseline(ctx context.Context, root m.Path, command TestCommand) m.TestResult
}

type orchestrator struct {
	fsAdapter   adapter.SourceFSAdapter
	testAdapter adapter.TestRunnerAdapter
	logger      *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and test runner adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, testAdapter adapter.TestRunnerAdapter, logger *slog.Logger) Orchestrator {
	return &orchestrator{
		fsAdapter:   fsAdapter,
		testAdapter: testAdapter,
		logger:      logger,
	}
}

func (to *orchestrator) TestMutant(ctx context.Context, mutant m.Mutant, command TestCommand) (m.Report, error) {
	if err := to.validateMutant(mutant); err != nil {
		return m.Report{}, err
	}

	tmpDir, err := to.prepareWorkspace(mutant.Source.Root)
	if tmpDir != "" {
		defer to.cleanupTempDir(tmpDir)
	}

	if err != nil {
		return m.Report{}, err
	}

	target := to.fsAdapter.JoinPath(string(tmpDir), string(mutant.Source.Origin.ShortPath))
	if err := to.writeMutatedFile(target, mutant.Code); err != nil {
		return m.Report{}, err
	}

	result := to.testAdapter.RunTests(ctx, tmpDir, command.Command, command.Timeout)

	to.logger.Debug("Tested mutant",
		"id", mutant.ID,
		"source", mutant.Source.Origin.ShortPath,
		"operator", mutant.Record.Operator,
		"line", mutant.Record.Line,
		"outcome", result.Outcome.String())

	return m.Report{
		MutantID: mutant.ID,
		Source:   mutant.Source.Origin.ShortPath,
		Record:   mutant.Record,
		Outcome:  result.Outcome,
		Cause:    result.Cause,
		Output:   tail(result.Output, maxReportOutput),
		Diff:     mutant.Diff,
		Duration: result.Duration,
	}, nil
}

func (to *orchestrator) Baseline(ctx context.Context, root m.Path, command TestCommand) m.TestResult {
	to.logger.Info("Running baseline", "root", root, "command", command.Command)

	result := to.testAdapter.RunTests(ctx, root, command.Command, command.Timeout)
	result.Output = tail(result.Output, maxReportOutput)

	return result
}

func (to *orchestrator) validateMutant(mutant m.Mutant) error {
	if mutant.Source.Origin == nil {
		return errors.New("source origin is nil")
	}

	if mutant.Source.Root == "" {
		return fmt.Errorf("mutant %s has no project root", mutant.ID)
	}

	return nil
}

func (to *orchestrator) prepareWorkspace(projectRoot m.Path) (m.Path, error) {
	tmpDir, err := to.fsAdapter.CreateTempDir("raygun-mutant-*")
	if err != nil {
		to.logger.Error("Failed to create temp dir", "error", err)
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	if err := to.fsAdapter.CopyDir(projectRoot, tmpDir); err != nil {
		to.logger.Error("Failed to copy project to temp dir", "projectRoot", projectRoot, "tmpDir", tmpDir, "error", err)
		return tmpDir, fmt.Errorf("failed to copy project: %w", err)
	}

	return tmpDir, nil
}

func (to *orchestrator) writeMutatedFile(path m.Path, content []byte) error {
	if err := to.fsAdapter.WriteFile(path, content, 0o600); err != nil {
		to.logger.Error("Failed to write mutated file", "path", path, "error", err)
		return fmt.Errorf("failed to write mutated file: %w", err)
	}

	return nil
}

// cleanupTempDir removes the temporary directory, logging errors if cleanup fails.
func (to *orchestrator) cleanupTempDir(tmpDir m.Path) {
	if err := to.fsAdapter.RemoveAll(tmpDir); err != nil {
		to.logger.Error("Failed to cleanup temp dir", "tmpDir", tmpDir, "error", err)
	}
}

// tail keeps at most the last limit bytes of s, starting on a rune boundary.
func tail(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := len(s) - limit
	for cut < len(s) && !utf8.RuneStart(s[cut]) {
		cut++
	}

	return "...\n" + s[cut:]
}
