/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/resolver"
	"bennypowers.dev/tokengen/schema"
)

func sheet(decls ...css.Declaration) *css.Stylesheet {
	return &css.Stylesheet{Sections: []css.Section{{Declarations: decls}}}
}

func lit(name, value string) css.Declaration {
	return css.Declaration{Name: name, Value: css.Literal(value)}
}

func ref(name, target string) css.Declaration {
	return css.Declaration{Name: name, Value: css.Ref(target)}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	prims := sheet(lit("color-fill-neutral-200", "#2D2D2D"))
	sem := sheet(
		ref("grey-default", "color-fill-neutral-200"),
		ref("background-base", "grey-default"),
	)

	graph := resolver.BuildDependencyGraph(prims, sem)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	want := []string{"color-fill-neutral-200", "grey-default", "background-base"}
	if !slices.Equal(order, want) {
		t.Errorf("TopologicalSort() = %v, want %v", order, want)
	}

	if deps := graph.Dependents("color-fill-neutral-200"); !slices.Equal(deps, []string{"grey-default"}) {
		t.Errorf("Dependents() = %v", deps)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	graph := resolver.BuildDependencyGraph(sheet(
		ref("a", "c"),
		ref("b", "a"),
		ref("c", "b"),
	))

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	if len(cycle) != 4 || cycle[0] != cycle[3] {
		t.Errorf("unexpected cycle path %v", cycle)
	}

	if _, err := graph.TopologicalSort(); !errors.Is(err, schema.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_Unresolved(t *testing.T) {
	graph := resolver.BuildDependencyGraph(sheet(
		ref("space-md", "spacing-16"),
		ref("space-lg", "spacing-24"),
		ref("corner-pill", "radius-full"),
		lit("spacing-16", "16px"),
		ref("space-md-alt", "spacing-24"),
	))

	want := []string{"spacing-24", "radius-full"}
	if got := graph.Unresolved(); !slices.Equal(got, want) {
		t.Errorf("Unresolved() = %v, want %v", got, want)
	}
}

func TestDependencyGraph_Resolve(t *testing.T) {
	graph := resolver.BuildDependencyGraph(
		sheet(lit("color-stroke-brand-500", "#0055FF")),
		sheet(
			ref("brand-base", "color-stroke-brand-500"),
			ref("focus-ring", "brand-base"),
			ref("brand-muted", "color-stroke-brand-950"),
			ref("loop-a", "loop-b"),
			ref("loop-b", "loop-a"),
		),
	)

	value, chain, err := graph.Resolve("focus-ring")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if value != "#0055FF" {
		t.Errorf("value = %q, want #0055FF", value)
	}
	if !slices.Equal(chain, []string{"focus-ring", "brand-base", "color-stroke-brand-500"}) {
		t.Errorf("chain = %v", chain)
	}

	if _, _, err := graph.Resolve("brand-muted"); err == nil {
		t.Error("expected error for undeclared target")
	}

	if _, _, err := graph.Resolve("loop-a"); !errors.Is(err, schema.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}
