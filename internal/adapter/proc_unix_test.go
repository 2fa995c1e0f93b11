//go:build unix

package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/raygun/internal/model"
)

// readPID reads the pid a test command wrote to dir/pid.
func readPID(t *testing.T, dir string) int {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join(dir, "pid"))
	require.NoError(t, err)

	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	require.NoError(t, err)

	return pid
}

// processGone reports whether pid no longer runs. A killed process whose
// parent already exited may linger as a zombie until init reaps it.
func processGone(pid int) bool {
	if errors.Is(syscall.Kill(pid, 0), syscall.ESRCH) {
		return true
	}

	stat, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return false
	}

	// The state follows the parenthesised command name.
	fields := strings.Fields(string(stat[strings.LastIndexByte(string(stat), ')')+1:]))

	return len(fields) > 0 && fields[0] == "Z"
}

func TestLocalTestRunnerAdapter_TimeoutReapsProcess(t *testing.T) {
	dir := t.TempDir()
	runner := NewLocalTestRunnerAdapter()

	result := runner.RunTests(context.Background(), m.Path(dir), "echo $$ > pid; exec sleep 5", 100*time.Millisecond)
	require.Equal(t, m.Incompetent, result.Outcome)

	pid := readPID(t, dir)
	assert.ErrorIs(t, syscall.Kill(pid, 0), syscall.ESRCH, "timed out child must not be running")
}

func TestLocalTestRunnerAdapter_TimeoutKillsGrandchildren(t *testing.T) {
	dir := t.TempDir()
	runner := NewLocalTestRunnerAdapter(WithWaitDelay(500 * time.Millisecond))

	start := time.Now()
	// The background sleep keeps the output pipe open; only a group kill
	// lets the run return before WaitDelay.
	result := runner.RunTests(context.Background(), m.Path(dir), "sleep 5 & wait", 100*time.Millisecond)

	assert.Equal(t, m.Incompetent, result.Outcome)
	assert.Equal(t, m.CauseTimeout, result.Cause)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLocalTestRunnerAdapter_TimeoutKillsGrandchildAfterShellExits(t *testing.T) {
	dir := t.TempDir()
	runner := NewLocalTestRunnerAdapter(WithWaitDelay(2 * time.Second))

	// The shell exits at once, leaving a background grandchild that holds
	// the output pipe past the deadline.
	command := "sh -c 'echo $$ > pid; exec sleep 30' & sleep 0.2; true"

	start := time.Now()
	result := runner.RunTests(context.Background(), m.Path(dir), command, 500*time.Millisecond)
	elapsed := time.Since(start)

	assert.Equal(t, m.Incompetent, result.Outcome)
	assert.Equal(t, m.CauseTimeout, result.Cause)
	assert.Less(t, elapsed, 2*time.Second, "run must not wait for WaitDelay")

	pid := readPID(t, dir)
	assert.Eventually(t, func() bool { return processGone(pid) }, 2*time.Second, 20*time.Millisecond,
		"grandchild %d must not outlive the run", pid)
}

func TestLocalTestRunnerAdapter_SuccessKillsLeftoverGrandchild(t *testing.T) {
	dir := t.TempDir()
	runner := NewLocalTestRunnerAdapter(WithWaitDelay(100 * time.Millisecond))

	// The grandchild detaches from the output pipe, so the shell's exit ends
	// the run right away.
	command := "sh -c 'echo $$ > pid; exec sleep 30' >/dev/null 2>&1 & sleep 0.2; true"

	result := runner.RunTests(context.Background(), m.Path(dir), command, 5*time.Second)
	assert.Equal(t, m.Survived, result.Outcome)

	pid := readPID(t, dir)
	assert.Eventually(t, func() bool { return processGone(pid) }, 2*time.Second, 20*time.Millisecond,
		"grandchild %d must not outlive the run", pid)
}
