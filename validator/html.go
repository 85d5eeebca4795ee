/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// htmlParser finds CSS inside <style> elements and style attributes.
type htmlParser struct {
	parser     *sitter.Parser
	styleQuery *sitter.Query
	attrQuery  *sitter.Query
}

func newHTMLParser() *htmlParser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(htmlLang); err != nil {
		panic(fmt.Sprintf("failed to set HTML language: %v", err))
	}

	styleQuery, qerr := sitter.NewQuery(htmlLang, `(style_element (raw_text) @css)`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile style query: %v", qerr))
	}

	attrQuery, qerr := sitter.NewQuery(htmlLang, `
		(attribute
			(attribute_name) @attr_name
			(quoted_attribute_value (attribute_value) @attr_value)
			(#eq? @attr_name "style"))
	`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile attribute query: %v", qerr))
	}

	return &htmlParser{
		parser:     parser,
		styleQuery: styleQuery,
		attrQuery:  attrQuery,
	}
}

func (p *htmlParser) Close() {
	p.parser.Close()
	p.styleQuery.Close()
	p.attrQuery.Close()
}

// region is a run of CSS embedded in another document.
type region struct {
	Content []byte
	Line    uint
	Column  uint
	// Wrapper is the number of bytes prepended on the first line to make
	// the content parse as a rule.
	Wrapper uint
}

// Scan extracts and scans every CSS region, mapping positions back to
// the HTML document.
func (p *htmlParser) Scan(source []byte, css *cssParser) scan {
	result := scan{Declared: make(map[string]bool)}
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return result
	}
	defer tree.Close()

	root := tree.RootNode()
	var regions []region

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.styleQuery, root, source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			node := capture.Node
			regions = append(regions, region{
				Content: source[node.StartByte():node.EndByte()],
				Line:    node.StartPosition().Row,
				Column:  node.StartPosition().Column,
			})
		}
	}

	attrCursor := sitter.NewQueryCursor()
	defer attrCursor.Close()

	attrMatches := attrCursor.Matches(p.attrQuery, root, source)
	for match := attrMatches.Next(); match != nil; match = attrMatches.Next() {
		for _, capture := range match.Captures {
			if p.attrQuery.CaptureNames()[capture.Index] != "attr_value" {
				continue
			}
			node := capture.Node
			wrapped := append([]byte("x{"), source[node.StartByte():node.EndByte()]...)
			regions = append(regions, region{
				Content: append(wrapped, '}'),
				Line:    node.StartPosition().Row,
				Column:  node.StartPosition().Column,
				Wrapper: 2,
			})
		}
	}

	for _, r := range regions {
		merge(&result, css.Scan(r.Content), r)
	}
	return result
}

// merge adds an embedded region's scan to result, offsetting positions.
// Only the first line of a region is offset by its column.
func merge(result *scan, embedded scan, r region) {
	for name := range embedded.Declared {
		result.Declared[name] = true
	}
	for _, ref := range embedded.References {
		if ref.Line == 0 {
			col := r.Column
			if ref.Column >= r.Wrapper {
				col += ref.Column - r.Wrapper
			}
			ref.Column = col
		}
		ref.Line += r.Line
		result.References = append(result.References, ref)
	}
}
