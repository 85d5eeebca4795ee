/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package primitive builds the primitive stylesheet: low-level custom
// properties holding raw token values.
//
// Only values present in the source are emitted. A missing ramp level,
// text role or group is skipped, never filled with a placeholder.
package primitive

import (
	"strings"

	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/internal/logger"
	"bennypowers.dev/tokengen/token"
)

// Result is the primitive stylesheet plus the lookups later stages need.
type Result struct {
	// Stylesheet holds one section per palette, text and subtree group.
	Stylesheet *css.Stylesheet

	names   map[string]bool
	sources map[string]string
}

// Has reports whether a primitive with the given property name was emitted.
func (r *Result) Has(name string) bool {
	return r.names[name]
}

// SourceName returns the property emitted for a source flat key, for
// primitives whose name differs from their source key.
func (r *Result) SourceName(key string) (string, bool) {
	name, ok := r.sources[key]
	return name, ok
}

// Names returns every emitted property name in emission order.
func (r *Result) Names() []string {
	decls := r.Stylesheet.Declarations()
	names := make([]string, len(decls))
	for i, decl := range decls {
		names[i] = decl.Name
	}
	return names
}

// pending is a declaration whose value is resolved after every
// primitive name is known.
type pending struct {
	name string
	raw  any
}

// Build emits the primitive stylesheet. flat must be the flattening of
// the whole tree.
//
// All names are indexed before any value is resolved, so an alias may
// point at a primitive declared later in the source.
func Build(tree *token.Group, flat *flatten.Map) *Result {
	r := &Result{
		Stylesheet: &css.Stylesheet{},
		names:      make(map[string]bool),
		sources:    make(map[string]string),
	}

	var titles []string
	var sections [][]pending
	add := func(i int, name string, raw any) {
		r.names[name] = true
		sections[i] = append(sections[i], pending{name: name, raw: raw})
	}
	open := func(title string) int {
		titles = append(titles, title)
		sections = append(sections, nil)
		return len(sections) - 1
	}

	for _, palette := range Palettes {
		i := open(palette.Title)
		for _, level := range palette.Levels {
			raw, ok := flat.Get(palette.Source + "-" + level)
			if !ok {
				continue
			}
			for _, variant := range palette.Variants {
				add(i, ColorName(variant, palette.Name, level), raw)
			}
		}
	}

	i := open("Text")
	for _, role := range TextRoles {
		name := TextName(role)
		if raw, ok := flat.Get(name); ok {
			add(i, name, raw)
		}
	}

	for _, subtree := range Subtrees {
		i := open(subtree.Title)
		group := LookupGroup(tree, subtree.Path...)
		if group == nil {
			logger.Debug("primitive group %q not found, skipping", strings.Join(subtree.Path, "/"))
			continue
		}
		sourcePrefix := formatter.KebabJoin(subtree.Path...)
		for _, entry := range flatten.Flatten(group).Entries() {
			name := formatter.ApplyPrefix(propertyKey(entry.Key), subtree.Prefix, "-")
			r.sources[sourcePrefix+"-"+entry.Key] = name
			add(i, name, entry.Value)
		}
	}

	for i, decls := range sections {
		section := css.Section{Title: titles[i]}
		for _, d := range decls {
			section.Declarations = append(section.Declarations, r.declare(d.name, d.raw))
		}
		r.Stylesheet.Sections = append(r.Stylesheet.Sections, section)
	}
	return r
}

// ResolveAlias maps an aliased token path to the property it names.
// The kebab-joined path is used as-is when it is an emitted name or when
// nothing matches; a known source key maps to its property.
func (r *Result) ResolveAlias(path []string) string {
	key := formatter.KebabJoin(path...)
	if r.Has(key) {
		return key
	}
	if name, ok := r.SourceName(key); ok {
		return name
	}
	return key
}

func (r *Result) declare(name string, raw any) css.Declaration {
	if path, ok := token.ParseAlias(raw); ok {
		return css.Declaration{Name: name, Value: css.Ref(r.ResolveAlias(path))}
	}
	return css.Declaration{Name: name, Value: css.Literal(formatter.FormatValue(name, raw))}
}

// propertyKey replaces path separators left in a flat key with hyphens.
func propertyKey(key string) string {
	return strings.NewReplacer("/", "-", ".", "-").Replace(key)
}

// LookupGroup finds a nested group by path, matching each segment by its
// kebab-case form. Returns nil if any segment is missing or not a group.
func LookupGroup(tree *token.Group, path ...string) *token.Group {
	current := tree
	for _, segment := range path {
		if current == nil {
			return nil
		}
		want := formatter.ToKebabCase(segment)
		var next *token.Group
		for _, key := range current.Keys() {
			if formatter.ToKebabCase(key) != want {
				continue
			}
			child, _ := current.Get(key)
			next = token.AsGroup(child)
		}
		current = next
	}
	return current
}
