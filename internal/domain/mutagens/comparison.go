package mutagens

import (
	"go/token"

	"gooze.dev/pkg/raygun/internal/domain"
)

var comparisonOps = []token.Token{token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ}

var logicalOps = []token.Token{token.LAND, token.LOR}

// Comparison returns one operator per ordered pair of comparison operators.
func Comparison() []*domain.Spec {
	return binarySwaps("comparison", comparisonOps, nil)
}

// Logical returns logical_and_or and logical_or_and.
func Logical() []*domain.Spec {
	return binarySwaps("logical", logicalOps, nil)
}
