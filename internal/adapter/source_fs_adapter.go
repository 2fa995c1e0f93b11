// Package adapter contains the infrastructure adapters of the raygun CLI:
// file system access, Go parsing, test execution and report storage.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"lukechampine.com/blake3"

	m "gooze.dev/pkg/raygun/internal/model"
)

// ErrNoSources is returned when the given paths contain no mutable Go files.
var ErrNoSources = errors.New("no Go source files found")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects and preparing workspaces.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get resolves Go-style path patterns ("./...", "./pkg/...", a directory
	// or a file) into mutable sources. Test files, vendor, testdata and
	// hidden directories are skipped. Exclude patterns are doublestar globs
	// matched against the path relative to the project root.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the hex BLAKE3 digest of the file at path.
	HashFile(path m.Path) (string, error)

	// FindProjectRoot searches for go.mod file walking up the directory tree.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// CreateTempDir creates a temporary directory for mutation testing.
	CreateTempDir(pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// CopyDir recursively copies a directory tree.
	CopyDir(src, dst m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects sources for paths, sorted by full path.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	seen := make(map[string]struct{})

	var files []string

	for _, p := range paths {
		found, err := a.expand(ctx, string(p))
		if err != nil {
			return nil, err
		}

		for _, f := range found {
			if _, dup := seen[f]; dup {
				continue
			}

			seen[f] = struct{}{}
			files = append(files, f)
		}
	}

	sort.Strings(files)

	sources := make([]m.Source, 0, len(files))
	roots := make(map[string]m.Path)

	for _, f := range files {
		root, ok := roots[filepath.Dir(f)]
		if !ok {
			var err error

			root, err = a.FindProjectRoot(m.Path(f))
			if err != nil {
				return nil, err
			}

			roots[filepath.Dir(f)] = root
		}

		rel, err := filepath.Rel(string(root), f)
		if err != nil {
			return nil, err
		}

		if excluded(filepath.ToSlash(rel), exclude) {
			continue
		}

		hash, err := a.HashFile(m.Path(f))
		if err != nil {
			return nil, err
		}

		sources = append(sources, m.Source{
			Origin: &m.File{FullPath: m.Path(f), ShortPath: m.Path(rel), Hash: hash},
			Root:   root,
		})
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	return sources, nil
}

// expand turns one path pattern into absolute file paths.
func (a *LocalSourceFSAdapter) expand(ctx context.Context, pattern string) ([]string, error) {
	recursive := false
	if pattern == "..." || strings.HasSuffix(pattern, "/...") {
		recursive = true
		pattern = strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/")

		if pattern == "" {
			pattern = "."
		}
	}

	root, err := filepath.Abs(pattern)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", pattern, err)
	}

	if !info.IsDir() {
		if !isMutableGoFile(root) {
			return nil, fmt.Errorf("%s is not a non-test Go file", pattern)
		}

		return []string{root}, nil
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}

			if !recursive || skipDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if isMutableGoFile(path) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func isMutableGoFile(path string) bool {
	return filepath.Ext(path) == ".go" && !strings.HasSuffix(path, "_test.go")
}

func skipDir(name string) bool {
	switch name {
	case "vendor", "testdata", "node_modules":
		return true
	}

	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if match, _ := doublestar.Match(pattern, rel); match {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the BLAKE3-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FindProjectRoot searches for go.mod file walking up the directory tree.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := filepath.Dir(string(startPath))

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// CreateTempDir creates a temporary directory for mutation testing.
func (a *LocalSourceFSAdapter) CreateTempDir(pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// CopyDir recursively copies a directory tree.
func (a *LocalSourceFSAdapter) CopyDir(src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		// Skip common directories that don't need to be copied
		if info.IsDir() {
			baseName := filepath.Base(path)
			if baseName == ".git" || baseName == "node_modules" {
				return filepath.SkipDir
			}
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalSourceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is internal project file path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is internal destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
