/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatten reduces a token tree to an ordered key/value map.
package flatten

import (
	"slices"

	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/token"
)

// Entry is a single flattened token.
type Entry struct {
	Key   string
	Value any
}

// Collision records a flattened key that was written more than once.
type Collision struct {
	// Key is the flattened key.
	Key string

	// Path is the source path of the entry that won.
	Path []string

	// Previous is the value that was overwritten.
	Previous any
}

// Map is an ordered mapping of flattened keys to raw token values.
// Overwriting an existing key replaces its value but keeps its position.
type Map struct {
	keys       []string
	values     map[string]any
	collisions []Collision
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set records value under key. Reports whether an earlier value was replaced.
func (m *Map) Set(key string, value any) bool {
	return m.set(key, value, nil)
}

func (m *Map) set(key string, value any, path []string) bool {
	previous, exists := m.values[key]
	if exists {
		m.collisions = append(m.collisions, Collision{Key: key, Path: path, Previous: previous})
	} else {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return exists
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Entries returns all entries in insertion order.
func (m *Map) Entries() []Entry {
	entries := make([]Entry, len(m.keys))
	for i, key := range m.keys {
		entries[i] = Entry{Key: key, Value: m.values[key]}
	}
	return entries
}

// Collisions returns every overwrite that happened while building the map.
func (m *Map) Collisions() []Collision {
	return slices.Clone(m.collisions)
}

// Walk visits every leaf under g depth-first in source order.
// prefix is prepended to each reported path.
func Walk(g *token.Group, prefix []string, visit func(path []string, leaf *token.Leaf)) {
	if g == nil {
		return
	}
	for _, key := range g.Keys() {
		child, _ := g.Get(key)
		path := append(slices.Clip(prefix), key)
		switch node := child.(type) {
		case *token.Leaf:
			visit(path, node)
		case *token.Group:
			Walk(node, path, visit)
		}
	}
}

// Flatten reduces g to a map of kebab-joined path to raw leaf value.
// prefix segments are normalized and prepended to every key.
//
// When two paths normalize to the same key the later one in traversal
// order wins; the overwrite is recorded in Collisions.
func Flatten(g *token.Group, prefix ...string) *Map {
	m := NewMap()
	Walk(g, prefix, func(path []string, leaf *token.Leaf) {
		m.set(formatter.KebabJoin(path...), leaf.Value, path)
	})
	return m
}
