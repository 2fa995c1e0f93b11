package domain

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/raygun/internal/model"
)

const sampleSource = `package sample

func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total = total + x
	}
	return total
}

func Avg(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	return Sum(xs) / len(xs)
}
`

func parseTree(t *testing.T, src string) *m.ProgramTree {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "sample.go", src, parser.ParseComments|parser.SkipObjectResolution)
	require.NoError(t, err)

	tree, err := m.NewProgramTree("sample.go", fset, file)
	require.NoError(t, err)

	return tree
}

func render(t *testing.T, tree *m.ProgramTree) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, format.Node(&buf, tree.Fset, tree.File))

	return buf.String()
}

// binaryOpSpec swaps from for to on every binary expression using from.
func binaryOpSpec(kind m.OperatorKind, from, to token.Token) *Spec {
	return &Spec{
		Kind:        kind,
		Description: "replace " + from.String() + " with " + to.String(),
		Sites: map[m.NodeKind]SiteFunc{
			m.KindBinaryExpr: func(n ast.Node) bool {
				return n.(*ast.BinaryExpr).Op == from
			},
		},
		Mutate: func(n ast.Node) ast.Node {
			mutated := *n.(*ast.BinaryExpr)
			mutated.Op = to

			return &mutated
		},
	}
}
