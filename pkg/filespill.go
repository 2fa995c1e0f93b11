// Package pkg provides utilities shared by the raygun CLI.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ErrSpillClosed is returned by operations on a closed FileSpill.
var ErrSpillClosed = errors.New("filespill is closed")

// FileSpill is an append-only list of items of type T kept on disk.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	// Close releases the backing file and removes it.
	Close() error
}

// SpillOption configures a FileSpill.
type SpillOption func(*spillConfig)

type spillConfig struct {
	dir    string
	logger *slog.Logger
}

// WithSpillDir sets the directory the spill file is created in. It defaults
// to the system temporary directory.
func WithSpillDir(dir string) SpillOption {
	return func(c *spillConfig) {
		c.dir = dir
	}
}

// WithSpillLogger sets the logger used for spill diagnostics.
func WithSpillLogger(logger *slog.Logger) SpillOption {
	return func(c *spillConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type fileSpillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	logger  *slog.Logger
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrSpillClosed
	}

	if err := f.encoder.Encode(item); err != nil {
		f.logger.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++
	f.logger.Debug("appended item", "path", f.path, "index", f.length-1)

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		f.logger.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		f.logger.Error("failed to remove file", "path", f.path, "error", err)
		return err
	}

	f.logger.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}

// Get implements FileSpill.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	var zero T

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return zero, ErrSpillClosed
	}

	if index >= f.length {
		f.logger.Warn("get index out of bounds", "path", f.path, "index", index, "length", f.length)
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, f.length)
	}

	var found T

	err := f.scan(func(i uint64, item T) error {
		if i == index {
			found = item
			return errStopScan
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return zero, err
	}

	f.logger.Debug("got item", "path", f.path, "index", index)

	return found, nil
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrSpillClosed
	}

	if err := f.scan(fn); err != nil {
		return err
	}

	f.logger.Debug("range completed", "path", f.path, "count", f.length)

	return nil
}

var errStopScan = errors.New("stop scan")

// scan decodes items in order. Callers hold f.mu.
func (f *fileSpillImpl[T]) scan(fn func(index uint64, item T) error) error {
	file, err := os.Open(f.path)
	if err != nil {
		f.logger.Error("failed to open file for reading", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			f.logger.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		// gob leaves zero-valued fields untouched, so every item needs a
		// fresh value.
		var item T
		if err := decoder.Decode(&item); err != nil {
			f.logger.Error("failed to decode item", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// NewFileSpill creates a new FileSpill for items of type T.
func NewFileSpill[T any](opts ...SpillOption) (FileSpill[T], error) {
	cfg := spillConfig{
		dir:    os.TempDir(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := os.MkdirAll(cfg.dir, 0o750); err != nil {
		cfg.logger.Error("failed to create spill directory", "path", cfg.dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(cfg.dir, "raygun-spill-*.gob")
	if err != nil {
		cfg.logger.Error("failed to create temp file", "path", cfg.dir, "error", err)
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	cfg.logger.Debug("created filespill", "path", file.Name())

	return &fileSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
		logger:  cfg.logger,
	}, nil
}
