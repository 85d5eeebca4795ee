/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/schema"
)

// Count is the number of declarations emitted in one section.
type Count struct {
	Title string
	Count int
}

// Report summarizes a successful run.
type Report struct {
	Source     string
	Dialect    schema.Dialect
	Tokens     int
	Primitives []Count
	Semantic   []Count
	Collisions int
	Unresolved []string
	Files      []string
}

func counts(sheet *css.Stylesheet) []Count {
	result := make([]Count, len(sheet.Sections))
	for i, section := range sheet.Sections {
		result[i] = Count{Title: section.Title, Count: len(section.Declarations)}
	}
	return result
}

func sum(counts []Count) int {
	n := 0
	for _, c := range counts {
		n += c.Count
	}
	return n
}

// PrimitiveTotal is the number of primitive declarations.
func (r *Report) PrimitiveTotal() int { return sum(r.Primitives) }

// SemanticTotal is the number of semantic declarations.
func (r *Report) SemanticTotal() int { return sum(r.Semantic) }

// Total is the number of declarations across both stylesheets.
func (r *Report) Total() int { return r.PrimitiveTotal() + r.SemanticTotal() }

// Print writes a human-readable summary.
func (r *Report) Print(w io.Writer) {
	title := cases.Title(language.English)

	fmt.Fprintf(w, "Source: %s (%s)\n", r.Source, r.Dialect)
	fmt.Fprintf(w, "Flat tokens: %d\n", r.Tokens)
	if r.Collisions > 0 {
		fmt.Fprintf(w, "Key collisions: %d\n", r.Collisions)
	}

	if len(r.Unresolved) > 0 {
		fmt.Fprintf(w, "External references: %d\n", len(r.Unresolved))
	}

	printGroup := func(name string, counts []Count, total int) {
		fmt.Fprintf(w, "\n%s (%d):\n", title.String(name), total)
		for _, c := range counts {
			if c.Count == 0 {
				continue
			}
			fmt.Fprintf(w, "  %-20s %d\n", title.String(c.Title), c.Count)
		}
	}
	printGroup("primitives", r.Primitives, r.PrimitiveTotal())
	printGroup("semantic", r.Semantic, r.SemanticTotal())

	fmt.Fprintf(w, "\nTotal: %d custom properties\n", r.Total())
	for _, f := range r.Files {
		fmt.Fprintf(w, "Wrote %s\n", f)
	}
}
