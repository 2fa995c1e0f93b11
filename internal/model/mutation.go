// Package model defines the data structures for mutation testing.
package model

// OperatorKind identifies a mutation operator.
type OperatorKind string

// ActivationRecord describes the single alteration applied to produce a
// mutant.
type ActivationRecord struct {
	Operator    OperatorKind `yaml:"type"`
	Description string       `yaml:"description"`
	Line        int          `yaml:"lineno"`
	Index       int          `yaml:"index"` // position in the operator's bombardment
}

// Mutant is a rendered mutant ready to be installed in a workspace.
type Mutant struct {
	ID     string
	Source Source
	Record ActivationRecord
	Code   []byte // full mutated file
	Diff   string // unified diff against the original file
}

// OperatorInfo describes a registered mutation operator.
type OperatorInfo struct {
	Kind        OperatorKind
	Description string
}
