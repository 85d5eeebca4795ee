/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// jsParser finds CSS inside css`...` tagged template literals.
type jsParser struct {
	parser        *sitter.Parser
	templateQuery *sitter.Query
}

func newJSParser() *jsParser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(jsLang); err != nil {
		panic(fmt.Sprintf("failed to set JS language: %v", err))
	}

	templateQuery, qerr := sitter.NewQuery(jsLang, `
		(call_expression
			function: (identifier) @tag
			arguments: (template_string) @template)
	`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile template query: %v", qerr))
	}

	return &jsParser{
		parser:        parser,
		templateQuery: templateQuery,
	}
}

func (p *jsParser) Close() {
	p.parser.Close()
	p.templateQuery.Close()
}

// Scan scans the literal text of every css template. ${...}
// substitutions split a template into separately scanned fragments.
func (p *jsParser) Scan(source []byte, css *cssParser) scan {
	result := scan{Declared: make(map[string]bool)}
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return result
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.templateQuery, tree.RootNode(), source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var tag string
		var template sitter.Node
		found := false

		for _, capture := range match.Captures {
			switch p.templateQuery.CaptureNames()[capture.Index] {
			case "tag":
				tag = string(source[capture.Node.StartByte():capture.Node.EndByte()])
			case "template":
				template = capture.Node
				found = true
			}
		}

		if tag != "css" || !found {
			continue
		}

		for i := uint(0); i < template.ChildCount(); i++ {
			child := template.Child(i)
			if child.Kind() != "string_fragment" {
				continue
			}
			merge(&result, css.Scan(source[child.StartByte():child.EndByte()]), region{
				Line:   child.StartPosition().Row,
				Column: child.StartPosition().Column,
			})
		}
	}
	return result
}
