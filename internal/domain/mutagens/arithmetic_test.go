package mutagens

import (
	"strings"
	"testing"

	"gooze.dev/pkg/raygun/internal/domain"
)

func TestArithmetic_ReplacesEachSiteOnce(t *testing.T) {
	tree := parseTree(t, `package main

func calc(a, b int) int {
	x := a + b
	return x + 1
}
`)

	mutants := bombard(t, tree, specByKind(t, "arithmetic_add_sub"))
	if len(mutants) != 2 {
		t.Fatalf("expected 2 mutants, got %d", len(mutants))
	}

	if !strings.Contains(mutants[0].code, "x := a - b") || !strings.Contains(mutants[0].code, "return x + 1") {
		t.Errorf("first mutant should only change a + b:\n%s", mutants[0].code)
	}

	if !strings.Contains(mutants[1].code, "x := a + b") || !strings.Contains(mutants[1].code, "return x - 1") {
		t.Errorf("second mutant should only change x + 1:\n%s", mutants[1].code)
	}

	if mutants[0].record.Line != 4 || mutants[1].record.Line != 5 {
		t.Errorf("unexpected lines %d, %d", mutants[0].record.Line, mutants[1].record.Line)
	}

	if mutants[0].record.Description != "replace + with -" {
		t.Errorf("unexpected description %q", mutants[0].record.Description)
	}
}

func TestArithmetic_SkipsStringConcatenation(t *testing.T) {
	tree := parseTree(t, `package main

func greet(name string) string {
	return "hello " + name
}
`)

	for _, spec := range Arithmetic() {
		if n := domain.CountSites(tree, spec); n != 0 {
			t.Errorf("%s: expected no sites in string concatenation, got %d", spec.Kind, n)
		}
	}
}

func TestArithmetic_OnlyMatchingOperator(t *testing.T) {
	tree := parseTree(t, `package main

func calc(a, b int) int {
	return a*b - a%b
}
`)

	counts := map[string]int{}
	for _, spec := range Arithmetic() {
		counts[string(spec.Kind)] = domain.CountSites(tree, spec)
	}

	if counts["arithmetic_mul_add"] != 1 || counts["arithmetic_sub_add"] != 1 || counts["arithmetic_mod_div"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	if counts["arithmetic_add_sub"] != 0 || counts["arithmetic_div_mul"] != 0 {
		t.Errorf("operators without matching sites should count zero: %v", counts)
	}
}
