package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "raygun", configBaseName)
	assert.Equal(t, "raygun.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "run.command", runCommandKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, ".raygun-reports", defaultReportsDir)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "RAYGUN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_VerboseEnablesDebug(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "raygun.log")

	verbose := configureLogger(logPath, true)
	require.NotNil(t, verbose)
	assert.True(t, verbose.Enabled(t.Context(), slog.LevelDebug))

	quiet := configureLogger(logPath, false)
	assert.False(t, quiet.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, quiet.Enabled(t.Context(), slog.LevelInfo))
}

func TestMutationTimeout(t *testing.T) {
	newRootCmd()

	assert.Equal(t, defaultMutationTimeout, mutationTimeout())

	t.Setenv("RAYGUN_RUN_MUTATION_TIMEOUT", "15")
	assert.Equal(t, 15*time.Second, mutationTimeout())

	t.Setenv("RAYGUN_RUN_MUTATION_TIMEOUT", "-1")
	assert.Zero(t, mutationTimeout())
}
