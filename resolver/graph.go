/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver analyzes references between generated custom properties.
package resolver

import (
	"fmt"

	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/schema"
)

// DependencyGraph represents a directed graph of custom property references.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	values       map[string]css.Value
	order        []string
}

// BuildDependencyGraph builds a dependency graph from the declarations of
// one or more stylesheets. A later declaration of the same name replaces
// an earlier one, as in the cascade.
func BuildDependencyGraph(sheets ...*css.Stylesheet) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		values:       make(map[string]css.Value),
	}

	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, decl := range sheet.Declarations() {
			if _, exists := graph.values[decl.Name]; !exists {
				graph.order = append(graph.order, decl.Name)
			}
			graph.values[decl.Name] = decl.Value
		}
	}

	for _, name := range graph.order {
		value := graph.values[name]
		if !value.IsRef() {
			continue
		}
		dep := value.RefName()
		graph.dependencies[name] = []string{dep}
		graph.dependents[dep] = append(graph.dependents[dep], name)
	}

	return graph
}

// Has reports whether name is declared.
func (g *DependencyGraph) Has(name string) bool {
	_, ok := g.values[name]
	return ok
}

// Value returns the declared value of name.
func (g *DependencyGraph) Value(name string) (css.Value, bool) {
	v, ok := g.values[name]
	return v, ok
}

// Names returns every declared property in declaration order.
func (g *DependencyGraph) Names() []string {
	return append([]string(nil), g.order...)
}

// Dependencies returns the properties that the given property references.
func (g *DependencyGraph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the properties that reference the given property.
func (g *DependencyGraph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}

// Unresolved returns referenced names with no declaration, in order of
// first reference. These resolve only if the consumer defines them.
func (g *DependencyGraph) Unresolved() []string {
	seen := make(map[string]bool)
	var result []string
	for _, name := range g.order {
		for _, dep := range g.dependencies[name] {
			if g.Has(dep) || seen[dep] {
				continue
			}
			seen[dep] = true
			result = append(result, dep)
		}
	}
	return result
}

// Resolve follows references from name to a literal value. It returns
// the chain of names visited, starting with name.
func (g *DependencyGraph) Resolve(name string) (string, []string, error) {
	chain := []string{name}
	visited := map[string]bool{name: true}
	current := name
	for {
		value, ok := g.values[current]
		if !ok {
			return "", chain, fmt.Errorf("--%s is not declared", current)
		}
		if !value.IsRef() {
			return value.Text(), chain, nil
		}
		current = value.RefName()
		chain = append(chain, current)
		if visited[current] {
			return "", chain, fmt.Errorf("%w: %v", schema.ErrCircularReference, chain)
		}
		visited[current] = true
	}
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns declared properties in dependency order
// (referenced properties first). Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.Has(dep) {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
