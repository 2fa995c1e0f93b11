package mutagens

import (
	"go/ast"
	"go/token"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// Boolean returns boolean_flip, which swaps the predeclared true and false.
func Boolean() []*domain.Spec {
	return []*domain.Spec{{
		Kind:        "boolean_flip",
		Description: "flip boolean literal",
		Sites: map[m.NodeKind]domain.SiteFunc{
			m.KindIdent: func(n ast.Node) bool {
				ident, ok := n.(*ast.Ident)
				return ok && isBooleanLiteral(ident.Name)
			},
		},
		Mutate: func(n ast.Node) ast.Node {
			ident, ok := n.(*ast.Ident)
			if !ok {
				return n
			}

			return &ast.Ident{NamePos: ident.NamePos, Name: flipBoolean(ident.Name)}
		},
	}}
}

// Unary returns the operators that drop a unary ! or -.
func Unary() []*domain.Spec {
	return []*domain.Spec{
		removeUnary(token.NOT, "unary_remove_not"),
		removeUnary(token.SUB, "unary_remove_neg"),
	}
}

func removeUnary(op token.Token, kind m.OperatorKind) *domain.Spec {
	return &domain.Spec{
		Kind:        kind,
		Description: "remove unary " + op.String(),
		Sites: map[m.NodeKind]domain.SiteFunc{
			m.KindUnaryExpr: func(n ast.Node) bool {
				un, ok := n.(*ast.UnaryExpr)
				return ok && un.Op == op
			},
		},
		Mutate: func(n ast.Node) ast.Node {
			un, ok := n.(*ast.UnaryExpr)
			if !ok {
				return n
			}

			return un.X
		},
	}
}

// isBooleanLiteral checks if a string is a boolean literal.
func isBooleanLiteral(name string) bool {
	return name == trueStr || name == falseStr
}

// flipBoolean returns the opposite boolean literal.
func flipBoolean(original string) string {
	if original == trueStr {
		return falseStr
	}

	return trueStr
}
