package mutagens

import (
	"strings"
	"testing"

	m "gooze.dev/pkg/raygun/internal/model"
)

func TestAll_KindsAreUniqueAndFamiliesComplete(t *testing.T) {
	// NewRegistry panics on duplicates.
	registry := DefaultRegistry()

	families := map[string]int{}
	for _, spec := range registry.Specs() {
		family, _, _ := strings.Cut(string(spec.Kind), "_")
		families[family]++

		if spec.Description == "" {
			t.Errorf("operator %s has no description", spec.Kind)
		}
	}

	expected := map[string]int{
		"arithmetic": 20, // 5 operators, 4 alternatives each
		"comparison": 30, // 6 operators, 5 alternatives each
		"logical":    2,
		"boolean":    1,
		"unary":      2,
		"branch":     4,
		"statement":  1,
	}

	for family, count := range expected {
		if families[family] != count {
			t.Errorf("family %s: expected %d operators, got %d", family, count, families[family])
		}
	}
}

func TestDefaultRegistry_ResolveFamily(t *testing.T) {
	specs, err := DefaultRegistry().Resolve("logical", "boolean_flip")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	got := make([]m.OperatorKind, 0, len(specs))
	for _, spec := range specs {
		got = append(got, spec.Kind)
	}

	want := []m.OperatorKind{"logical_and_or", "logical_or_and", "boolean_flip"}
	if strings.Join(toStrings(got), ",") != strings.Join(toStrings(want), ",") {
		t.Fatalf("Resolve() = %v, want %v", got, want)
	}
}

func toStrings(kinds []m.OperatorKind) []string {
	out := make([]string, len(kinds))
	for i, kind := range kinds {
		out[i] = string(kind)
	}

	return out
}
