package domain

import (
	"iter"

	m "gooze.dev/pkg/raygun/internal/model"
)

// Bombard lazily yields one mutant per mutation site of spec in tree, in
// document order. Every mutant is mutated on its own deep copy; tree itself
// is never modified. The sequence ends at the first target index for which
// no site exists.
func Bombard(tree *m.ProgramTree, spec *Spec) iter.Seq2[m.ActivationRecord, *m.ProgramTree] {
	spec.validate()

	return func(yield func(m.ActivationRecord, *m.ProgramTree) bool) {
		for target := 0; ; target++ {
			operator := NewOperator(spec, target)
			mutant := tree.Clone()
			operator.Visit(mutant)

			record, ok := operator.ActivationRecord()
			if !ok {
				return
			}

			if !yield(record, mutant) {
				return
			}
		}
	}
}

// CountSites returns the number of mutation sites of spec in tree without
// mutating or copying it.
func CountSites(tree *m.ProgramTree, spec *Spec) int {
	operator := NewOperator(spec, neverFire)
	operator.Visit(tree)

	return operator.Count()
}
