package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/raygun/internal/domain"
	domainmocks "gooze.dev/pkg/raygun/internal/domain/mocks"
	m "gooze.dev/pkg/raygun/internal/model"
)

// useWorkflow installs wf and a discarding logger for the duration of the
// test, so setupDependencies leaves both alone.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow, originalLogger := workflow, logger
	workflow = wf
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Cleanup(func() {
		workflow, logger = originalWorkflow, originalLogger
	})
}

// newTestRootCmd builds a root command with the given subcommands and
// captured output.
func newTestRootCmd(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(sub...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		name      string
		shard     string
		wantIndex int
		wantTotal int
		wantErr   bool
	}{
		{"empty string", "", 0, 1, false},
		{"valid 0/3", "0/3", 0, 3, false},
		{"valid 1/3", "1/3", 1, 3, false},
		{"valid 2/3", "2/3", 2, 3, false},
		{"invalid format", "invalid", 0, 0, true},
		{"trailing garbage", "1/3x", 0, 0, true},
		{"missing total", "1/", 0, 0, true},
		{"zero total", "0/0", 0, 0, true},
		{"negative total", "0/-1", 0, 0, true},
		{"negative index", "-1/3", 0, 0, true},
		{"index >= total", "3/3", 0, 0, true},
		{"index > total", "5/3", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIndex, gotTotal, err := parseShardFlag(tt.shard)
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidShard)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, gotIndex, "index")
			assert.Equal(t, tt.wantTotal, gotTotal, "total")
		})
	}
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"./..."}, []m.Path{m.Path("./...")}},
		{
			"multiple",
			[]string{"./cmd", "./pkg", "./internal"},
			[]m.Path{m.Path("./cmd"), m.Path("./pkg"), m.Path("./internal")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOperators(t *testing.T) {
	got := parseOperators([]string{"arithmetic", "", "comparison_eq_ne"})
	assert.Equal(t, []m.OperatorKind{"arithmetic", "comparison_eq_ne"}, got)
	assert.Empty(t, parseOperators(nil))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "raygun", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, excludeFlagName, operatorFlagName, commandFlagName, mutationTimeoutFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"run", "list", "operators", "baseline", "view", "init", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, output := newTestRootCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Supports Go-style path patterns")
}

func TestSetupDependencies_KeepsInjectedWorkflow(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	require.NoError(t, setupDependencies(newRootCmd(), nil))
	assert.Same(t, mockWorkflow, workflow)
}

func TestSetupDependencies_BuildsWorkflow(t *testing.T) {
	useWorkflow(t, nil)

	require.NoError(t, setupDependencies(newRootCmd(), nil))
	assert.NotNil(t, workflow)
	assert.NotNil(t, logger)
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			assert.NotNil(t, cmd.Context())
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute would exit the process, so check the command itself.
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(*cobra.Command, []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(*cobra.Command, []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // exits with status 1
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	var exitErr *exec.ExitError
	if assert.ErrorAs(t, err, &exitErr) {
		assert.Equal(t, 1, exitErr.ExitCode())
	}

	assert.Contains(t, string(output), "error occurred")
}
