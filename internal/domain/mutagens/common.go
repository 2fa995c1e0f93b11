// Package mutagens provides the built-in mutation operators.
package mutagens

import (
	"fmt"
	"go/ast"
	"go/token"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

// All returns every built-in operator.
func All() []*domain.Spec {
	var specs []*domain.Spec

	specs = append(specs, Arithmetic()...)
	specs = append(specs, Comparison()...)
	specs = append(specs, Logical()...)
	specs = append(specs, Boolean()...)
	specs = append(specs, Unary()...)
	specs = append(specs, Branch()...)
	specs = append(specs, Statement()...)

	return specs
}

// DefaultRegistry returns a registry holding every built-in operator.
func DefaultRegistry() *domain.Registry {
	return domain.NewRegistry(All()...)
}

var tokenNames = map[token.Token]string{
	token.ADD:  "add",
	token.SUB:  "sub",
	token.MUL:  "mul",
	token.QUO:  "div",
	token.REM:  "mod",
	token.EQL:  "eq",
	token.NEQ:  "ne",
	token.LSS:  "lt",
	token.LEQ:  "le",
	token.GTR:  "gt",
	token.GEQ:  "ge",
	token.LAND: "and",
	token.LOR:  "or",
	token.NOT:  "not",
}

// alternatives returns every operator of ops other than original.
func alternatives(ops []token.Token, original token.Token) []token.Token {
	var alts []token.Token

	for _, op := range ops {
		if op != original {
			alts = append(alts, op)
		}
	}

	return alts
}

// binarySwaps builds one operator per ordered (from, to) pair of ops.
func binarySwaps(family string, ops []token.Token, eligible func(*ast.BinaryExpr) bool) []*domain.Spec {
	var specs []*domain.Spec

	for _, from := range ops {
		for _, to := range alternatives(ops, from) {
			specs = append(specs, binarySwap(family, from, to, eligible))
		}
	}

	return specs
}

func binarySwap(family string, from, to token.Token, eligible func(*ast.BinaryExpr) bool) *domain.Spec {
	return &domain.Spec{
		Kind:        m.OperatorKind(fmt.Sprintf("%s_%s_%s", family, tokenNames[from], tokenNames[to])),
		Description: fmt.Sprintf("replace %s with %s", from, to),
		Sites: map[m.NodeKind]domain.SiteFunc{
			m.KindBinaryExpr: func(n ast.Node) bool {
				bin, ok := n.(*ast.BinaryExpr)
				return ok && bin.Op == from && (eligible == nil || eligible(bin))
			},
		},
		Mutate: func(n ast.Node) ast.Node {
			bin, ok := n.(*ast.BinaryExpr)
			if !ok {
				return n
			}

			mutated := *bin
			mutated.Op = to

			return &mutated
		},
	}
}
