package domain

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/ast/astutil"

	m "gooze.dev/pkg/raygun/internal/model"
)

// SiteFunc reports whether a node of a registered kind is a mutation site.
type SiteFunc func(n ast.Node) bool

// MutateFunc rewrites a mutation site. It returns the replacement node, nil
// to delete the node, or n itself to decline the mutation.
type MutateFunc func(n ast.Node) ast.Node

// Spec defines a mutation operator. Sites is the capability table: the node
// kinds the operator handles, each with its eligibility check.
type Spec struct {
	Kind        m.OperatorKind
	Description string
	Sites       map[m.NodeKind]SiteFunc
	Mutate      MutateFunc
}

func (s *Spec) String() string {
	return s.Description
}

// Info returns the user-facing description of the operator.
func (s *Spec) Info() m.OperatorInfo {
	return m.OperatorInfo{Kind: s.Kind, Description: s.Description}
}

// validate panics on a spec that can never produce a mutant. Such a spec is
// an integration error, not something to recover from at runtime.
func (s *Spec) validate() {
	if s == nil {
		panic("mutation operator: nil spec")
	}

	if s.Kind == "" {
		panic("mutation operator: empty kind")
	}

	if s.Mutate == nil {
		panic(fmt.Sprintf("mutation operator %s: Mutate must be implemented", s.Kind))
	}

	if len(s.Sites) == 0 {
		panic(fmt.Sprintf("mutation operator %s: no mutation sites registered", s.Kind))
	}
}

// neverFire is a target index no traversal reaches.
const neverFire = -1

// Operator is the per-traversal state of a Spec. A fresh Operator is built for
// every target index and must not be reused or shared between goroutines.
type Operator struct {
	spec   *Spec
	tree   *m.ProgramTree
	target int
	count  int
	record *m.ActivationRecord
}

// NewOperator binds spec to one traversal that mutates the site at target.
func NewOperator(spec *Spec, target int) *Operator {
	spec.validate()

	return &Operator{spec: spec, target: target}
}

// ActivationRecord returns the record of the mutation applied during the
// traversal, if any.
func (o *Operator) ActivationRecord() (m.ActivationRecord, bool) {
	if o.record == nil {
		return m.ActivationRecord{}, false
	}

	return *o.record, true
}

// Count returns the number of sites visited so far.
func (o *Operator) Count() int {
	return o.count
}

// Visit traverses tree in document order, mutating it in place at the target
// site. Callers pass a tree they own.
func (o *Operator) Visit(tree *m.ProgramTree) {
	o.tree = tree
	astutil.Apply(tree.File, o.pre, nil)
}

func (o *Operator) pre(c *astutil.Cursor) bool {
	n := c.Node()
	if n == nil {
		return true
	}

	site, ok := o.spec.Sites[m.KindOf(n)]
	if !ok || !site(n) {
		return true
	}

	return o.visitMutationSite(c)
}

// visitMutationSite fires the mutation when the running count reaches the
// target and always advances the count.
func (o *Operator) visitMutationSite(c *astutil.Cursor) bool {
	defer func() { o.count++ }()

	if o.count != o.target {
		return true
	}

	n := c.Node()
	o.record = &m.ActivationRecord{
		Operator:    o.spec.Kind,
		Description: o.spec.String(),
		Line:        o.tree.Line(n),
		Index:       o.target,
	}

	replacement := o.spec.Mutate(n)

	switch {
	case replacement == nil:
		return o.delete(c)
	case replacement != n:
		c.Replace(replacement)
	}

	return true
}

// delete removes the current node. Outside a list only statements can be
// removed; they become empty statements.
func (o *Operator) delete(c *astutil.Cursor) bool {
	if c.Index() >= 0 {
		c.Delete()
		return false
	}

	if _, ok := c.Node().(ast.Stmt); ok {
		c.Replace(&ast.EmptyStmt{Semicolon: c.Node().Pos(), Implicit: true})
		return false
	}

	panic(fmt.Sprintf("mutation operator %s: cannot delete %T outside a list", o.spec.Kind, c.Node()))
}
