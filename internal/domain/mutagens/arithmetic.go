package mutagens

import (
	"go/ast"
	"go/token"

	"gooze.dev/pkg/raygun/internal/domain"
)

var arithmeticOps = []token.Token{token.ADD, token.SUB, token.MUL, token.QUO, token.REM}

// Arithmetic returns one operator per ordered pair of arithmetic operators,
// e.g. arithmetic_add_sub turns a + b into a - b.
func Arithmetic() []*domain.Spec {
	return binarySwaps("arithmetic", arithmeticOps, isNumericBinary)
}

// isNumericBinary rejects string concatenation with a literal operand, which
// only + supports.
func isNumericBinary(bin *ast.BinaryExpr) bool {
	return !isStringLit(bin.X) && !isStringLit(bin.Y)
}

func isStringLit(expr ast.Expr) bool {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
