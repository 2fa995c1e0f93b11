package adapter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/raygun/internal/model"
)

func TestLocalTestRunnerAdapter_RunTests(t *testing.T) {
	runner := NewLocalTestRunnerAdapter()
	dir := m.Path(t.TempDir())

	t.Run("exit zero survives", func(t *testing.T) {
		result := runner.RunTests(context.Background(), dir, "true", 0)

		assert.Equal(t, m.Survived, result.Outcome)
		assert.Empty(t, result.Output)
		assert.Equal(t, m.CauseNone, result.Cause)
		assert.Equal(t, 0, result.ExitCode)
	})

	t.Run("non-zero exit kills", func(t *testing.T) {
		result := runner.RunTests(context.Background(), dir, "false", 0)

		assert.Equal(t, m.Killed, result.Outcome)
		assert.Equal(t, 1, result.ExitCode)
	})

	t.Run("stdout and stderr are merged", func(t *testing.T) {
		result := runner.RunTests(context.Background(), dir, "echo out; echo err >&2; exit 3", 0)

		assert.Equal(t, m.Killed, result.Outcome)
		assert.Equal(t, 3, result.ExitCode)
		assert.Contains(t, result.Output, "out")
		assert.Contains(t, result.Output, "err")
	})

	t.Run("missing command is incompetent", func(t *testing.T) {
		result := runner.RunTests(context.Background(), dir, "nonexistent-command-xyz", 0)

		assert.Equal(t, m.Incompetent, result.Outcome)
		assert.Equal(t, m.CauseLaunch, result.Cause)
		assert.NotEmpty(t, result.Output)
	})

	t.Run("empty command is incompetent", func(t *testing.T) {
		result := runner.RunTests(context.Background(), dir, "  ", 0)

		assert.Equal(t, m.Incompetent, result.Outcome)
		assert.Equal(t, m.CauseLaunch, result.Cause)
	})

	t.Run("runs in working directory", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(string(dir), "marker"), nil, 0o600))

		result := runner.RunTests(context.Background(), dir, "test -f marker", 0)

		assert.Equal(t, m.Survived, result.Outcome)
	})

	t.Run("bytecode cache is disabled", func(t *testing.T) {
		result := runner.RunTests(context.Background(), dir, `test "$PYTHONDONTWRITEBYTECODE" = 1`, 0)

		assert.Equal(t, m.Survived, result.Outcome)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := runner.RunTests(context.Background(), dir, "false", time.Minute)
		second := runner.RunTests(context.Background(), dir, "false", time.Minute)

		assert.Equal(t, first.Outcome, second.Outcome)
	})
}

func TestLocalTestRunnerAdapter_ExtraEnv(t *testing.T) {
	runner := NewLocalTestRunnerAdapter(WithRunnerEnv("RAYGUN_MUTANT=1"))

	result := runner.RunTests(context.Background(), m.Path(t.TempDir()), `test "$RAYGUN_MUTANT" = 1`, 0)

	assert.Equal(t, m.Survived, result.Outcome)
}

func TestLocalTestRunnerAdapter_MissingShell(t *testing.T) {
	runner := NewLocalTestRunnerAdapter(WithShell("/nonexistent/shell"))

	result := runner.RunTests(context.Background(), m.Path(t.TempDir()), "true", 0)

	assert.Equal(t, m.Incompetent, result.Outcome)
	assert.Equal(t, m.CauseLaunch, result.Cause)
	assert.Contains(t, result.Output, "failed to start")
}

func TestLocalTestRunnerAdapter_Timeout(t *testing.T) {
	runner := NewLocalTestRunnerAdapter()

	start := time.Now()
	result := runner.RunTests(context.Background(), m.Path(t.TempDir()), "echo started; sleep 5", 100*time.Millisecond)

	assert.Less(t, time.Since(start), 3*time.Second)
	assert.Equal(t, m.Incompetent, result.Outcome)
	assert.Equal(t, m.CauseTimeout, result.Cause)
	assert.Contains(t, result.Output, "timed out")
	assert.Contains(t, result.Output, "started")
}

func TestLocalTestRunnerAdapter_Canceled(t *testing.T) {
	runner := NewLocalTestRunnerAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	result := runner.RunTests(ctx, m.Path(t.TempDir()), "sleep 5", 0)

	assert.Equal(t, m.Incompetent, result.Outcome)
	assert.Equal(t, m.CauseCanceled, result.Cause)
}

func TestLocalTestRunnerAdapter_DurationRecorded(t *testing.T) {
	runner := NewLocalTestRunnerAdapter()

	result := runner.RunTests(context.Background(), m.Path(t.TempDir()), "sleep 0.05", 0)

	assert.Equal(t, m.Survived, result.Outcome)
	assert.GreaterOrEqual(t, result.Duration, 50*time.Millisecond)
	assert.False(t, strings.Contains(result.Output, "timed out"))
}

func TestLocalTestRunnerAdapter_PanicIsIncompetent(t *testing.T) {
	runner := NewLocalTestRunnerAdapter()
	runner.start = func(*exec.Cmd) error {
		panic("start hook exploded")
	}

	result := runner.RunTests(context.Background(), m.Path(t.TempDir()), "true", time.Minute)

	assert.Equal(t, m.Incompetent, result.Outcome)
	assert.Equal(t, m.CauseInternal, result.Cause)
	assert.Equal(t, -1, result.ExitCode)
	assert.Contains(t, result.Output, "start hook exploded")
	assert.Contains(t, result.Output, "goroutine")
}
