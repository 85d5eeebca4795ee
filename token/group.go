/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group represents a group of tokens (can be nested).
// Child order follows the source document.
type Group struct {
	// Name is the group's identifier as written in the source.
	Name string

	// Description is optional documentation for the group.
	Description string

	keys     []string
	children map[string]Node
}

func (*Group) node() {}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{
		Name:     name,
		children: make(map[string]Node),
	}
}

// Set adds or replaces a named child. A replaced child keeps its original
// position.
func (g *Group) Set(name string, child Node) {
	if _, exists := g.children[name]; !exists {
		g.keys = append(g.keys, name)
	}
	g.children[name] = child
}

// Keys returns child names in source order.
func (g *Group) Keys() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Get returns the named child.
func (g *Group) Get(name string) (Node, bool) {
	n, ok := g.children[name]
	return n, ok
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.keys)
}

// Lookup walks a path of child names from this group.
// Returns false if any segment is missing or a leaf is hit early.
func (g *Group) Lookup(path ...string) (Node, bool) {
	var current Node = g
	for _, segment := range path {
		group, ok := current.(*Group)
		if !ok {
			return nil, false
		}
		current, ok = group.children[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// LookupGroup walks a path and returns the group found there, or nil.
func (g *Group) LookupGroup(path ...string) *Group {
	n, ok := g.Lookup(path...)
	if !ok {
		return nil
	}
	return AsGroup(n)
}

// CountLeaves returns the number of leaves in this group and nested groups.
func (g *Group) CountLeaves() int {
	count := 0
	for _, key := range g.keys {
		switch child := g.children[key].(type) {
		case *Leaf:
			count++
		case *Group:
			count += child.CountLeaves()
		}
	}
	return count
}
