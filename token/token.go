/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the in-memory design token tree.
//
// A token tree is built once from a source document and never mutated
// afterwards. Every node is either a [Leaf], which carries one concrete
// value, or a [Group], which holds named children in source order.
package token

// Node is a token tree node: either a *Leaf or a *Group.
type Node interface {
	node()
}

// Leaf is a node carrying one concrete design value.
type Leaf struct {
	// Value is the raw value as decoded from the source document.
	// Scalars decode to string, int, float64 or bool; composite values
	// decode to map[string]any or []any.
	Value any

	// Type is the optional type tag (e.g., "color", "dimension").
	Type string

	// Description is optional documentation for the token.
	Description string
}

func (*Leaf) node() {}

// IsNumber reports whether the leaf's raw value is numeric.
func (l *Leaf) IsNumber() bool {
	switch l.Value.(type) {
	case int, int64, uint64, float64:
		return true
	}
	return false
}

// AsLeaf returns n as a *Leaf, or nil if n is a group.
func AsLeaf(n Node) *Leaf {
	leaf, _ := n.(*Leaf)
	return leaf
}

// AsGroup returns n as a *Group, or nil if n is a leaf.
func AsGroup(n Node) *Group {
	group, _ := n.(*Group)
	return group
}
