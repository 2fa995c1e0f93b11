package mutagens

import (
	"go/ast"
	"go/token"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

// Branch returns the operators that rewrite if statements: force the
// condition to true or false, negate it, or drop the else branch.
func Branch() []*domain.Spec {
	return []*domain.Spec{
		replaceCondition("branch_force_true", "force if condition to true", func(ast.Expr) ast.Expr {
			return ast.NewIdent(trueStr)
		}),
		replaceCondition("branch_force_false", "force if condition to false", func(ast.Expr) ast.Expr {
			return ast.NewIdent(falseStr)
		}),
		replaceCondition("branch_invert", "negate if condition", invertCondition),
		removeElseBlock(),
	}
}

func replaceCondition(kind m.OperatorKind, description string, rewrite func(ast.Expr) ast.Expr) *domain.Spec {
	return &domain.Spec{
		Kind:        kind,
		Description: description,
		Sites: map[m.NodeKind]domain.SiteFunc{
			m.KindIfStmt: func(n ast.Node) bool {
				stmt, ok := n.(*ast.IfStmt)
				return ok && stmt.Cond != nil
			},
		},
		Mutate: func(n ast.Node) ast.Node {
			stmt, ok := n.(*ast.IfStmt)
			if !ok {
				return n
			}

			mutated := *stmt
			mutated.Cond = rewrite(stmt.Cond)

			return &mutated
		},
	}
}

// invertCondition wraps cond as !(cond).
func invertCondition(cond ast.Expr) ast.Expr {
	return &ast.UnaryExpr{
		OpPos: cond.Pos(),
		Op:    token.NOT,
		X:     &ast.ParenExpr{X: cond},
	}
}

// removeElseBlock keeps only the if branch of an if/else.
func removeElseBlock() *domain.Spec {
	return &domain.Spec{
		Kind:        "branch_remove_else",
		Description: "remove else branch",
		Sites: map[m.NodeKind]domain.SiteFunc{
			m.KindIfStmt: func(n ast.Node) bool {
				stmt, ok := n.(*ast.IfStmt)
				return ok && stmt.Else != nil
			},
		},
		Mutate: func(n ast.Node) ast.Node {
			stmt, ok := n.(*ast.IfStmt)
			if !ok {
				return n
			}

			mutated := *stmt
			mutated.Else = nil

			return &mutated
		},
	}
}
