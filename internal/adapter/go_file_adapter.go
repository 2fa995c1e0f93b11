package adapter

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"

	m "gooze.dev/pkg/raygun/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing and printing so the domain
// layer only deals with program trees.
type GoFileAdapter interface {
	// Parse builds a program tree for filename. Comments are kept and object
	// resolution is skipped so the tree can be deep-copied.
	Parse(ctx context.Context, filename m.Path, src []byte) (*m.ProgramTree, error)

	// Format renders a program tree back to gofmt-ed source.
	Format(tree *m.ProgramTree) ([]byte, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds a program tree for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, filename m.Path, src []byte) (*m.ProgramTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, string(filename), src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return m.NewProgramTree(filename, fset, file)
}

// Format prints tree with gofmt style.
func (a *LocalGoFileAdapter) Format(tree *m.ProgramTree) ([]byte, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, tree.Fset, tree.File); err != nil {
		return nil, fmt.Errorf("format %s: %w", tree.Path, err)
	}

	return buf.Bytes(), nil
}
