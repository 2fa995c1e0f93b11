package mutagens

import (
	"go/ast"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

// Statement returns statement_delete, which removes call statements such as
// `cleanup()` or `wg.Done()`.
func Statement() []*domain.Spec {
	return []*domain.Spec{{
		Kind:        "statement_delete",
		Description: "delete call statement",
		Sites: map[m.NodeKind]domain.SiteFunc{
			m.KindExprStmt: func(n ast.Node) bool {
				stmt, ok := n.(*ast.ExprStmt)
				if !ok {
					return false
				}

				_, isCall := stmt.X.(*ast.CallExpr)

				return isCall
			},
		},
		Mutate: func(ast.Node) ast.Node {
			return nil
		},
	}}
}
