/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// cssParser extracts custom property declarations and var() calls.
type cssParser struct {
	parser *sitter.Parser
}

func newCSSParser() *cssParser {
	parser := sitter.NewParser()
	_ = parser.SetLanguage(cssLang)
	return &cssParser{parser: parser}
}

func (p *cssParser) Close() {
	p.parser.Close()
}

// Scan parses CSS source. Positions are zero-based within source.
func (p *cssParser) Scan(source []byte) scan {
	result := scan{Declared: make(map[string]bool)}
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return result
	}
	defer tree.Close()

	p.walk(tree.RootNode(), source, &result)
	return result
}

func (p *cssParser) walk(node *sitter.Node, source []byte, result *scan) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "declaration":
		p.handleDeclaration(node, source, result)
	case "call_expression":
		p.handleCallExpression(node, source, result)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		p.walk(node.Child(i), source, result)
	}
}

func (p *cssParser) handleDeclaration(node *sitter.Node, source []byte, result *scan) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "property_name" {
			continue
		}
		name := string(source[child.StartByte():child.EndByte()])
		if strings.HasPrefix(name, "--") {
			result.Declared[name] = true
		}
		return
	}
}

func (p *cssParser) handleCallExpression(node *sitter.Node, source []byte, result *scan) {
	var functionName string
	var arguments *sitter.Node

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "function_name":
			functionName = string(source[child.StartByte():child.EndByte()])
		case "arguments":
			arguments = child
		}
	}

	if functionName != "var" || arguments == nil {
		return
	}

	var name string
	argCount := 0
	for i := uint(0); i < arguments.ChildCount(); i++ {
		child := arguments.Child(i)
		switch child.Kind() {
		case "(", ")", ",":
			continue
		}
		if argCount == 0 {
			name = strings.TrimSpace(string(source[child.StartByte():child.EndByte()]))
		}
		argCount++
	}

	if !strings.HasPrefix(name, "--") {
		return
	}

	result.References = append(result.References, reference{
		Name:        name,
		Line:        node.StartPosition().Row,
		Column:      node.StartPosition().Column,
		HasFallback: argCount > 1,
	})
}
