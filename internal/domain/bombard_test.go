package domain

import (
	"go/ast"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/raygun/internal/model"
)

func collect(t *testing.T, tree *m.ProgramTree, spec *Spec) ([]m.ActivationRecord, []string) {
	t.Helper()

	var (
		records []m.ActivationRecord
		codes   []string
	)

	for record, mutant := range Bombard(tree, spec) {
		records = append(records, record)
		codes = append(codes, render(t, mutant))
	}

	return records, codes
}

func TestBombard_OneMutantPerSite(t *testing.T) {
	tree := parseTree(t, sampleSource)
	original := render(t, tree)
	spec := binaryOpSpec("test_add_sub", token.ADD, token.SUB)

	records, codes := collect(t, tree, spec)

	require.Len(t, records, 1)
	assert.Equal(t, CountSites(tree, spec), len(records))
	assert.Equal(t, m.ActivationRecord{
		Operator:    "test_add_sub",
		Description: "replace + with -",
		Line:        6,
		Index:       0,
	}, records[0])
	assert.Contains(t, codes[0], "total = total - x")
	assert.Equal(t, original, render(t, tree), "input tree must not be modified")
}

func TestBombard_DocumentOrderAndIndexes(t *testing.T) {
	tree := parseTree(t, `package sample

func f(a, b int) bool {
	return a < b || b < a || a < 0
}
`)
	spec := binaryOpSpec("test_lt_ge", token.LSS, token.GEQ)

	records, codes := collect(t, tree, spec)

	require.Len(t, records, 3)
	for i, record := range records {
		assert.Equal(t, i, record.Index)
		assert.Equal(t, 4, record.Line)
	}

	assert.Contains(t, codes[0], "a >= b || b < a || a < 0")
	assert.Contains(t, codes[1], "a < b || b >= a || a < 0")
	assert.Contains(t, codes[2], "a < b || b < a || a >= 0")
}

func TestBombard_Deterministic(t *testing.T) {
	tree := parseTree(t, sampleSource)
	spec := binaryOpSpec("test_quo_mul", token.QUO, token.MUL)

	firstRecords, firstCodes := collect(t, tree, spec)
	secondRecords, secondCodes := collect(t, tree, spec)

	assert.Equal(t, firstRecords, secondRecords)
	assert.Equal(t, firstCodes, secondCodes)
}

func TestBombard_NoSites(t *testing.T) {
	tree := parseTree(t, sampleSource)
	spec := binaryOpSpec("test_xor_or", token.XOR, token.OR)

	records, _ := collect(t, tree, spec)

	assert.Empty(t, records)
	assert.Zero(t, CountSites(tree, spec))
}

func TestBombard_DeclinedMutationYieldsIdenticalTree(t *testing.T) {
	tree := parseTree(t, sampleSource)
	original := render(t, tree)

	spec := binaryOpSpec("test_decline", token.ADD, token.ADD)
	spec.Mutate = func(n ast.Node) ast.Node { return n }

	records, codes := collect(t, tree, spec)

	require.Len(t, records, 1)
	assert.Equal(t, original, codes[0])
}

func TestBombard_DeleteStatement(t *testing.T) {
	tree := parseTree(t, sampleSource)
	spec := &Spec{
		Kind:        "test_delete_return",
		Description: "delete return",
		Sites: map[m.NodeKind]SiteFunc{
			m.KindReturnStmt: func(ast.Node) bool { return true },
		},
		Mutate: func(ast.Node) ast.Node { return nil },
	}

	records, codes := collect(t, tree, spec)

	require.Len(t, records, 3)
	assert.NotContains(t, codes[0], "return total")
	assert.Contains(t, codes[0], "return 0")
	assert.Equal(t, 13, records[1].Line)
	assert.NotContains(t, codes[1], "return 0")
}

func TestBombard_StopsEarly(t *testing.T) {
	tree := parseTree(t, `package sample

var a, b, c = 1 + 1, 2 + 2, 3 + 3
`)
	spec := binaryOpSpec("test_add_mul", token.ADD, token.MUL)

	seen := 0
	for range Bombard(tree, spec) {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
	assert.Equal(t, 3, CountSites(tree, spec))
}

func TestBombard_MutantsAreIndependent(t *testing.T) {
	tree := parseTree(t, `package sample

var a, b = 1 + 1, 2 + 2
`)
	spec := binaryOpSpec("test_add_mul", token.ADD, token.MUL)

	var mutants []*m.ProgramTree
	for _, mutant := range Bombard(tree, spec) {
		mutants = append(mutants, mutant)
	}

	require.Len(t, mutants, 2)
	assert.Contains(t, render(t, mutants[0]), "1 * 1, 2 + 2")
	assert.Contains(t, render(t, mutants[1]), "1 + 1, 2 * 2")
}
