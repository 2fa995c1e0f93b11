package domain_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/raygun/internal/adapter"
	"gooze.dev/pkg/raygun/internal/domain"
	"gooze.dev/pkg/raygun/internal/domain/mutagens"
	m "gooze.dev/pkg/raygun/internal/model"
)

const calcSource = `package calc

func Add(a, b int) int {
	return a + b
}

func IsPositive(n int) bool {
	return n > 0
}
`

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// writeProject lays out files under a temporary module root.
func writeProject(t *testing.T, files map[string]string) m.Path {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/calc\n\ngo 1.21\n"), 0o600))

	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return m.Path(root)
}

func getSources(t *testing.T, root m.Path) []m.Source {
	t.Helper()

	sources, err := adapter.NewLocalSourceFSAdapter().Get(context.Background(), []m.Path{root + "/..."})
	require.NoError(t, err)

	return sources
}

func resolve(t *testing.T, kinds ...m.OperatorKind) []*domain.Spec {
	t.Helper()

	specs, err := mutagens.DefaultRegistry().Resolve(kinds...)
	require.NoError(t, err)

	return specs
}

func newStreamer() domain.MutationStreamer {
	return domain.NewMutationStreamer(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalGoFileAdapter(), discardLogger())
}

func drain(t *testing.T, mutants <-chan m.Mutant, errCh <-chan error) []m.Mutant {
	t.Helper()

	var result []m.Mutant
	for mutant := range mutants {
		result = append(result, mutant)
	}

	for err := range errCh {
		require.NoError(t, err)
	}

	return result
}
