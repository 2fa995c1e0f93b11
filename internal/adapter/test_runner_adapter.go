package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime/debug"
	"strings"
	"time"

	m "gooze.dev/pkg/raygun/internal/model"
)

// bytecodeEnv keeps interpreted test suites from caching compiled modules of
// the file being mutated.
const bytecodeEnv = "PYTHONDONTWRITEBYTECODE=1"

// Exit statuses the shell uses when it cannot run the command.
const (
	exitNotExecutable = 126
	exitNotFound      = 127
)

// TestRunnerAdapter runs a test command and classifies the outcome.
type TestRunnerAdapter interface {
	// RunTests runs command through the shell in workDir. A timeout <= 0
	// disables the deadline. It never returns an error: every failure is
	// reported as an Incompetent result.
	RunTests(ctx context.Context, workDir m.Path, command string, timeout time.Duration) m.TestResult
}

// LocalTestRunnerAdapter runs test commands as local child processes.
type LocalTestRunnerAdapter struct {
	logger    *slog.Logger
	shell     string
	env       []string
	waitDelay time.Duration
	start     func(*exec.Cmd) error
}

// TestRunnerOption configures a LocalTestRunnerAdapter.
type TestRunnerOption func(*LocalTestRunnerAdapter)

// WithRunnerLogger sets the logger used to report test runs.
func WithRunnerLogger(logger *slog.Logger) TestRunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRunnerEnv adds KEY=VALUE pairs to the child environment.
func WithRunnerEnv(env ...string) TestRunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		a.env = append(a.env, env...)
	}
}

// WithShell overrides the shell used to interpret commands.
func WithShell(shell string) TestRunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		a.shell = shell
	}
}

// WithWaitDelay bounds how long to wait for output pipes after the process
// group was killed.
func WithWaitDelay(d time.Duration) TestRunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		a.waitDelay = d
	}
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter using /bin/sh.
func NewLocalTestRunnerAdapter(opts ...TestRunnerOption) *LocalTestRunnerAdapter {
	a := &LocalTestRunnerAdapter{
		logger:    slog.New(slog.DiscardHandler),
		shell:     "/bin/sh",
		waitDelay: 2 * time.Second,
		start:     (*exec.Cmd).Start,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// RunTests runs command and maps its exit status to a TestOutcome.
func (a *LocalTestRunnerAdapter) RunTests(ctx context.Context, workDir m.Path, command string, timeout time.Duration) (result m.TestResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = m.TestResult{
				Outcome:  m.Incompetent,
				Cause:    m.CauseInternal,
				ExitCode: -1,
				Output:   fmt.Sprintf("panic while running tests: %v\n%s", r, debug.Stack()),
			}
		}

		result.Duration = time.Since(start)

		a.logger.Debug("test command finished",
			slog.String("dir", string(workDir)),
			slog.String("command", command),
			slog.String("outcome", result.Outcome.String()),
			slog.String("cause", string(result.Cause)),
			slog.Int("exit_code", result.ExitCode),
			slog.Duration("duration", result.Duration))
	}()

	if strings.TrimSpace(command) == "" {
		return incompetent(m.CauseLaunch, "empty test command")
	}

	runCtx := ctx

	if timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var output bytes.Buffer

	cmd := exec.CommandContext(runCtx, a.shell, "-c", command)
	cmd.Dir = string(workDir)
	cmd.Env = append(append(os.Environ(), bytecodeEnv), a.env...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	cmd.WaitDelay = a.waitDelay
	useProcessGroup(cmd)

	if err := a.start(cmd); err != nil {
		return incompetent(m.CauseLaunch, fmt.Sprintf("failed to start test command: %v", err))
	}

	// Whatever the shell left behind dies with the run.
	defer func() {
		if err := killProcessGroup(cmd); err != nil {
			a.logger.Warn("failed to kill test process group", slog.Int("pid", cmd.Process.Pid), slog.Any("error", err))
		}
	}()

	// exec only cancels a shell that is still running; a background
	// grandchild holding the output pipe needs its own kill.
	stop := context.AfterFunc(runCtx, func() {
		_ = killProcessGroup(cmd)
	})

	err := cmd.Wait()
	if !stop() && err == nil {
		err = runCtx.Err()
	}

	return a.classify(ctx, runCtx, err, output.String(), timeout)
}

func (a *LocalTestRunnerAdapter) classify(parent, runCtx context.Context, err error, output string, timeout time.Duration) m.TestResult {
	if err == nil {
		return m.TestResult{Outcome: m.Survived, Output: output}
	}

	switch {
	case parent.Err() != nil:
		return incompetent(m.CauseCanceled, fmt.Sprintf("test run canceled: %v\n%s", parent.Err(), output))
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return incompetent(m.CauseTimeout, fmt.Sprintf("test command timed out after %s\n%s", timeout, output))
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return incompetent(m.CauseLaunch, fmt.Sprintf("test command failed: %v\n%s", err, output))
	}

	code := exitErr.ExitCode()
	if code == exitNotExecutable || code == exitNotFound {
		result := incompetent(m.CauseLaunch, fmt.Sprintf("shell could not run test command (exit %d)\n%s", code, output))
		result.ExitCode = code

		return result
	}

	// Signal deaths report -1 and count as a failing test run.
	return m.TestResult{Outcome: m.Killed, Output: output, ExitCode: code}
}

func incompetent(cause m.IncompetenceCause, output string) m.TestResult {
	return m.TestResult{
		Outcome:  m.Incompetent,
		Cause:    cause,
		Output:   output,
		ExitCode: -1,
	}
}
