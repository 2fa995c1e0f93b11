package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	m "gooze.dev/pkg/raygun/internal/model"
)

// ErrUnknownOperator is returned when a requested operator is not registered.
var ErrUnknownOperator = errors.New("unknown mutation operator")

// Registry holds the mutation operators available to a run.
type Registry struct {
	specs map[m.OperatorKind]*Spec
}

// NewRegistry builds a registry from specs. It panics on an invalid or
// duplicate spec.
func NewRegistry(specs ...*Spec) *Registry {
	r := &Registry{specs: make(map[m.OperatorKind]*Spec, len(specs))}
	for _, spec := range specs {
		r.Register(spec)
	}

	return r
}

// Register adds spec to the registry.
func (r *Registry) Register(spec *Spec) {
	spec.validate()

	if _, exists := r.specs[spec.Kind]; exists {
		panic(fmt.Sprintf("mutation operator %s registered twice", spec.Kind))
	}

	r.specs[spec.Kind] = spec
}

// Lookup returns the spec registered for kind.
func (r *Registry) Lookup(kind m.OperatorKind) (*Spec, bool) {
	spec, ok := r.specs[kind]
	return spec, ok
}

// Specs returns every registered spec sorted by kind.
func (r *Registry) Specs() []*Spec {
	specs := make([]*Spec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Kind < specs[j].Kind
	})

	return specs
}

// Resolve returns the specs for kinds in the given order, or every spec when
// kinds is empty. A kind that names a family ("arithmetic") selects every
// operator of that family ("arithmetic_add_sub", ...).
func (r *Registry) Resolve(kinds ...m.OperatorKind) ([]*Spec, error) {
	if len(kinds) == 0 {
		return r.Specs(), nil
	}

	seen := make(map[m.OperatorKind]struct{})
	specs := make([]*Spec, 0, len(kinds))

	add := func(spec *Spec) {
		if _, dup := seen[spec.Kind]; dup {
			return
		}

		seen[spec.Kind] = struct{}{}
		specs = append(specs, spec)
	}

	for _, kind := range kinds {
		if spec, ok := r.Lookup(kind); ok {
			add(spec)
			continue
		}

		family := r.family(kind)
		if len(family) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, kind)
		}

		for _, spec := range family {
			add(spec)
		}
	}

	return specs, nil
}

func (r *Registry) family(prefix m.OperatorKind) []*Spec {
	var specs []*Spec

	for _, spec := range r.Specs() {
		if strings.HasPrefix(string(spec.Kind), string(prefix)+"_") {
			specs = append(specs, spec)
		}
	}

	return specs
}
