package mutagens

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

func parseTree(t *testing.T, src string) *m.ProgramTree {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	tree, err := m.NewProgramTree("test.go", fset, file)
	if err != nil {
		t.Fatalf("failed to wrap tree: %v", err)
	}

	return tree
}

func render(t *testing.T, tree *m.ProgramTree) string {
	t.Helper()

	var buf bytes.Buffer
	if err := format.Node(&buf, tree.Fset, tree.File); err != nil {
		t.Fatalf("failed to render tree: %v", err)
	}

	return buf.String()
}

type renderedMutant struct {
	record m.ActivationRecord
	code   string
}

func bombard(t *testing.T, tree *m.ProgramTree, spec *domain.Spec) []renderedMutant {
	t.Helper()

	var mutants []renderedMutant
	for record, mutant := range domain.Bombard(tree, spec) {
		mutants = append(mutants, renderedMutant{record: record, code: render(t, mutant)})
	}

	return mutants
}

func specByKind(t *testing.T, kind m.OperatorKind) *domain.Spec {
	t.Helper()

	spec, ok := DefaultRegistry().Lookup(kind)
	if !ok {
		t.Fatalf("operator %s is not registered", kind)
	}

	return spec
}
