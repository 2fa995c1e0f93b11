package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/raygun/internal/model"
)

func newReportSpill(t *testing.T) FileSpill[m.Report] {
	t.Helper()

	spill, err := NewFileSpill[m.Report](WithSpillDir(t.TempDir()), WithSpillLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Close() })

	return spill
}

func sampleReport(index int, outcome m.TestOutcome) m.Report {
	return m.Report{
		MutantID: fmt.Sprintf("%032x", index),
		Source:   "internal/calc/calc.go",
		Record: m.ActivationRecord{
			Operator:    "arithmetic_add_sub",
			Description: "replace + with -",
			Line:        10 + index,
			Index:       index,
		},
		Outcome:  outcome,
		Duration: time.Duration(index) * time.Millisecond,
	}
}

func TestFileSpill_ReportRoundTrip(t *testing.T) {
	spill := newReportSpill(t)

	want := []m.Report{
		sampleReport(0, m.Killed),
		sampleReport(1, m.Survived),
		{
			MutantID: "timeout",
			Source:   "calc.go",
			Record:   m.ActivationRecord{Operator: "statement_delete", Line: 7},
			Outcome:  m.Incompetent,
			Cause:    m.CauseTimeout,
			Output:   "test command timed out after 2m0s\n",
			Diff:     "--- a/calc.go\n+++ b/calc.go\n",
		},
	}
	want[1].Diff = "-\treturn a + b\n+\treturn a - b\n"

	require.NoError(t, spill.AppendBatch(want))
	require.Equal(t, uint64(len(want)), spill.Len())

	var got []m.Report
	require.NoError(t, spill.Range(func(_ uint64, r m.Report) error {
		got = append(got, r)
		return nil
	}))

	assert.Equal(t, want, got)

	// A Survived report after an Incompetent one must not inherit its Cause.
	require.NoError(t, spill.Append(sampleReport(3, m.Survived)))

	last, err := spill.Get(3)
	require.NoError(t, err)
	assert.Equal(t, m.Survived, last.Outcome)
	assert.Equal(t, m.CauseNone, last.Cause)
	assert.Empty(t, last.Output)
}

func TestFileSpill_ConcurrentWorkersAppend(t *testing.T) {
	spill := newReportSpill(t)

	const (
		workers   = 8
		perWorker = 25
	)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perWorker {
				outcome := m.Killed
				if i%3 == 0 {
					outcome = m.Survived
				}

				assert.NoError(t, spill.Append(sampleReport(w*perWorker+i, outcome)))
			}
		}()
	}

	wg.Wait()

	require.Equal(t, uint64(workers*perWorker), spill.Len())

	seen := make(map[int]bool)
	var score m.Score

	require.NoError(t, spill.Range(func(_ uint64, r m.Report) error {
		seen[r.Record.Index] = true
		score.Add(r.Outcome)

		return nil
	}))

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, workers*perWorker, score.Total())
	assert.Equal(t, workers*9, score.Survived) // i = 0, 3, ..., 24
}

func TestFileSpill_RangeStopsOnError(t *testing.T) {
	spill := newReportSpill(t)
	require.NoError(t, spill.AppendBatch([]m.Report{sampleReport(0, m.Killed), sampleReport(1, m.Killed)}))

	stop := errors.New("stop")
	visited := 0

	err := spill.Range(func(uint64, m.Report) error {
		visited++
		return stop
	})

	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestFileSpill_GetOutOfBounds(t *testing.T) {
	spill := newReportSpill(t)
	require.NoError(t, spill.Append(sampleReport(0, m.Killed)))

	_, err := spill.Get(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestFileSpill_WithSpillDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "spill")

	spill, err := NewFileSpill[m.Report](WithSpillDir(dir))
	require.NoError(t, err)
	defer spill.Close()

	assert.Equal(t, dir, filepath.Dir(spill.Path()))
	assert.FileExists(t, spill.Path())
}

func TestFileSpill_CloseRemovesFile(t *testing.T) {
	spill, err := NewFileSpill[m.Report](WithSpillDir(t.TempDir()))
	require.NoError(t, err)

	require.NoError(t, spill.Append(sampleReport(0, m.Killed)))
	require.NoError(t, spill.Close())

	_, statErr := os.Stat(spill.Path())
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	assert.ErrorIs(t, spill.Append(sampleReport(1, m.Killed)), ErrSpillClosed)
	assert.ErrorIs(t, spill.Range(func(uint64, m.Report) error { return nil }), ErrSpillClosed)

	_, err = spill.Get(0)
	assert.ErrorIs(t, err, ErrSpillClosed)

	assert.NoError(t, spill.Close(), "closing twice is a no-op")
}

func TestFileSpill_UnusableDirectoryFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := NewFileSpill[m.Report](WithSpillDir(filepath.Join(blocker, "spill")))
	require.Error(t, err)
}
