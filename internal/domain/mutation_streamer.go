package domain

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pmezard/go-difflib/difflib"
	"lukechampine.com/blake3"

	"gooze.dev/pkg/raygun/internal/adapter"
	m "gooze.dev/pkg/raygun/internal/model"
)

// MutationStreamer defines the interface for streaming mutation generation.
type MutationStreamer interface {
	// Get streams the mutants of every source for every spec, sources in the
	// given order and operators in spec order. Both channels close when done
	// or when ctx is cancelled; the error channel carries at most one error.
	Get(ctx context.Context, sources []m.Source, specs []*Spec, threads int) (<-chan m.Mutant, <-chan error)
	// ShardMutants keeps the mutants whose stream index i satisfies
	// i % shardCount == shardIndex. A shardCount <= 0 disables sharding.
	ShardMutants(ctx context.Context, in <-chan m.Mutant, threads int, shardIndex, shardCount int) <-chan m.Mutant
}

type mutationStreamer struct {
	adapter.SourceFSAdapter
	adapter.GoFileAdapter
	logger *slog.Logger
}

// NewMutationStreamer creates a new MutationStreamer instance with the provided dependencies.
func NewMutationStreamer(fsAdapter adapter.SourceFSAdapter, goFileAdapter adapter.GoFileAdapter, logger *slog.Logger) MutationStreamer {
	return &mutationStreamer{
		SourceFSAdapter: fsAdapter,
		GoFileAdapter:   goFileAdapter,
		logger:          logger,
	}
}

func (ms *mutationStreamer) Get(ctx context.Context, sources []m.Source, specs []*Spec, threads int) (<-chan m.Mutant, <-chan error) {
	ms.logger.Debug("Starting mutation streaming", "sources", len(sources), "operators", len(specs))

	ch := make(chan m.Mutant, normalizeBufferSize(threads))
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		defer close(ch)

		for _, source := range sources {
			if ctx.Err() != nil {
				ms.logger.Debug("Mutation streaming cancelled")
				return
			}

			if err := ms.processSource(ctx, source, specs, ch); err != nil {
				ms.logger.Error("Failed to generate mutants", "source", source.Origin.FullPath, "error", err)
				errCh <- err

				return
			}
		}
	}()

	return ch, errCh
}

// processSource bombards one source with every spec and sends the rendered
// mutants to ch.
func (ms *mutationStreamer) processSource(ctx context.Context, source m.Source, specs []*Spec, ch chan<- m.Mutant) error {
	original, err := ms.ReadFile(source.Origin.FullPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", source.Origin.ShortPath, err)
	}

	tree, err := ms.Parse(ctx, source.Origin.FullPath, original)
	if err != nil {
		return err
	}

	// Diff against the printed original so formatting differences of the
	// input never show up as part of a mutation.
	pristine, err := ms.Format(tree)
	if err != nil {
		return err
	}

	count := 0

	for _, spec := range specs {
		for record, mutated := range Bombard(tree, spec) {
			mutant, err := ms.render(source, record, pristine, mutated)
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return nil
			case ch <- mutant:
				count++
			}
		}
	}

	ms.logger.Debug("Generated mutants for source", "source", source.Origin.ShortPath, "count", count)

	return nil
}

func (ms *mutationStreamer) render(source m.Source, record m.ActivationRecord, pristine []byte, mutated *m.ProgramTree) (m.Mutant, error) {
	code, err := ms.Format(mutated)
	if err != nil {
		return m.Mutant{}, err
	}

	name := string(source.Origin.ShortPath)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(pristine)),
		B:        difflib.SplitLines(string(code)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return m.Mutant{}, fmt.Errorf("diff %s: %w", name, err)
	}

	return m.Mutant{
		ID:     mutantID(source, record),
		Source: source,
		Record: record,
		Code:   code,
		Diff:   diff,
	}, nil
}

// mutantID is stable for as long as the source content and operator set do
// not change.
func mutantID(source m.Source, record m.ActivationRecord) string {
	h := blake3.New(16, nil)
	_, _ = h.Write([]byte(source.Origin.ShortPath))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(source.Origin.Hash))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(record.Operator))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(record.Index)))

	return hex.EncodeToString(h.Sum(nil))
}

// normalizeBufferSize ensures the buffer size is at least 1.
func normalizeBufferSize(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

// ShardMutants filters mutants by shard index.
func (ms *mutationStreamer) ShardMutants(ctx context.Context, in <-chan m.Mutant, threads int, shardIndex, shardCount int) <-chan m.Mutant {
	ch := make(chan m.Mutant, normalizeBufferSize(threads))

	go func() {
		defer close(ch)

		// If sharding is disabled, pass through all mutants
		if shardCount <= 0 {
			ms.logger.Debug("Sharding disabled, passing through all mutants")
			ms.passThroughMutants(ctx, in, ch)

			return
		}

		ms.logger.Debug("Starting mutant sharding", "shardIndex", shardIndex, "shardCount", shardCount)
		ms.filterMutantsByShard(ctx, in, ch, shardIndex, shardCount)
	}()

	return ch
}

// passThroughMutants forwards all mutants from input to output channel.
func (ms *mutationStreamer) passThroughMutants(ctx context.Context, in <-chan m.Mutant, out chan<- m.Mutant) {
	for mutant := range in {
		select {
		case <-ctx.Done():
			ms.logger.Debug("Mutant pass-through cancelled")
			return
		case out <- mutant:
		}
	}
}

// filterMutantsByShard filters mutants using round-robin shard assignment.
func (ms *mutationStreamer) filterMutantsByShard(ctx context.Context, in <-chan m.Mutant, out chan<- m.Mutant, shardIndex, shardCount int) {
	index := 0

	for mutant := range in {
		if index%shardCount == shardIndex {
			select {
			case <-ctx.Done():
				ms.logger.Debug("Mutant sharding cancelled")
				return
			case out <- mutant:
			}
		}

		index++
	}
}

// shardSize returns how many of total stream indexes fall into shardIndex.
func shardSize(total, shardIndex, shardCount int) int {
	if shardCount <= 0 {
		return total
	}

	if shardIndex >= total {
		return 0
	}

	return (total - shardIndex + shardCount - 1) / shardCount
}
