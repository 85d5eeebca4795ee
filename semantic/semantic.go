/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package semantic builds the semantic stylesheet: purpose-named custom
// properties that alias primitives or carry semantic literals.
//
// Sections are emitted in a fixed order and, within a section, in table
// order. Entries copied from the source are skipped when the source lacks
// them. Text, scale and shadow entries are unconditional.
package semantic

import (
	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/internal/logger"
	"bennypowers.dev/tokengen/primitive"
	"bennypowers.dev/tokengen/token"
)

type builder struct {
	flat    *flatten.Map
	prims   *primitive.Result
	sources map[string]string
}

// Build emits the semantic stylesheet.
func Build(tree *token.Group, flat *flatten.Map, prims *primitive.Result) *css.Stylesheet {
	b := &builder{
		flat:    flat,
		prims:   prims,
		sources: make(map[string]string),
	}

	poi := b.subtreeSlots(tree, pointsOfInterestPath, "poi")
	connections := append(b.subtreeSlots(tree, clustersPath, "connection-cluster"), genericConnection)
	feedback := feedbackSlots()

	// Index every slot first so aliases between semantic tokens resolve
	// regardless of declaration order.
	for _, group := range [][]slot{backgroundSlots, borderSlots, brandSlots, feedback, focusSlots, poi, connections} {
		for _, s := range group {
			b.sources[s.Source] = s.Name
		}
	}

	return &css.Stylesheet{Sections: []css.Section{
		b.slotSection("Background", backgroundSlots),
		b.slotSection("Border", borderSlots),
		b.slotSection("Brand", brandSlots),
		aliasSection("Text", textAliases()),
		b.slotSection("Feedback", feedback),
		b.slotSection("Focus", focusSlots),
		b.slotSection("Points of Interest", poi),
		b.slotSection("Connections", connections),
		b.toneSection("Tones", toneAliases),
		aliasSection("Typography", typographyAliases),
		aliasSection("Spacing", spacingAliases),
		aliasSection("Radius", radiusAliases),
		aliasSection("Border Widths", borderWidthAliases),
		literalSection("Shadows", shadowLiterals),
	}}
}

// subtreeSlots builds one slot per leaf of an open-ended group.
func (b *builder) subtreeSlots(tree *token.Group, path []string, name string) []slot {
	group := primitive.LookupGroup(tree, path...)
	if group == nil {
		return nil
	}
	sourcePrefix := formatter.KebabJoin(path...)
	var result []slot
	for _, key := range flatten.Flatten(group).Keys() {
		result = append(result, slot{Source: sourcePrefix + "-" + key, Name: name + "-" + key})
	}
	return result
}

// slotSection copies present source tokens as literals or references.
func (b *builder) slotSection(title string, slots []slot) css.Section {
	section := css.Section{Title: title}
	for _, s := range slots {
		raw, ok := b.flat.Get(s.Source)
		if !ok {
			continue
		}
		section.Declarations = append(section.Declarations, css.Declaration{
			Name:  s.Name,
			Value: b.value(s.Name, raw),
		})
	}
	return section
}

// toneSection emits aliases whose primitive was emitted.
func (b *builder) toneSection(title string, aliases []alias) css.Section {
	section := css.Section{Title: title}
	for _, a := range aliases {
		if !b.prims.Has(a.Ref) {
			continue
		}
		section.Declarations = append(section.Declarations, css.Declaration{Name: a.Name, Value: css.Ref(a.Ref)})
	}
	return section
}

func aliasSection(title string, aliases []alias) css.Section {
	section := css.Section{Title: title}
	for _, a := range aliases {
		section.Declarations = append(section.Declarations, css.Declaration{Name: a.Name, Value: css.Ref(a.Ref)})
	}
	return section
}

func literalSection(title string, literals []literal) css.Section {
	section := css.Section{Title: title}
	for _, l := range literals {
		section.Declarations = append(section.Declarations, css.Declaration{Name: l.Name, Value: css.Literal(l.Value)})
	}
	return section
}

// value turns a raw source value into a declaration value. Aliases become
// references to the primitive or semantic property they name.
func (b *builder) value(name string, raw any) css.Value {
	path, ok := token.ParseAlias(raw)
	if !ok {
		return css.Literal(formatter.FormatValue(name, raw))
	}
	key := formatter.KebabJoin(path...)
	if b.prims.Has(key) {
		return css.Ref(key)
	}
	if target, ok := b.prims.SourceName(key); ok {
		return css.Ref(target)
	}
	if target, ok := b.sources[key]; ok {
		return css.Ref(target)
	}
	logger.Debug("%s: alias {%s} does not match a generated property", name, key)
	return css.Ref(key)
}
