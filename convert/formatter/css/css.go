/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property stylesheet formatting.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokengen/convert/formatter"
)

// Selector is the rule selector that scopes the custom properties.
type Selector string

const (
	// SelectorRoot scopes properties to the document root.
	SelectorRoot Selector = ":root"

	// SelectorHost scopes properties to a shadow host.
	SelectorHost Selector = ":host"
)

// Module selects an optional module wrapper around the stylesheet.
type Module string

const (
	// ModuleNone emits a plain stylesheet.
	ModuleNone Module = ""

	// ModuleLit wraps the stylesheet in a Lit css tagged template.
	ModuleLit Module = "lit"
)

// Value is a declaration value: either literal text or a reference to
// another custom property.
type Value struct {
	literal string
	ref     string
}

// Literal returns a value that is written verbatim.
func Literal(text string) Value {
	return Value{literal: text}
}

// Ref returns a value that points at the custom property with the given
// name (without leading dashes).
func Ref(name string) Value {
	return Value{ref: name}
}

// IsRef reports whether v points at another property.
func (v Value) IsRef() bool {
	return v.ref != ""
}

// RefName returns the referenced property name, or "" for literals.
func (v Value) RefName() string {
	return v.ref
}

// Text returns the literal text, or "" for references.
func (v Value) Text() string {
	return v.literal
}

// Declaration is one custom property declaration.
type Declaration struct {
	// Name is the property name without leading dashes or prefix.
	Name string

	// Value is the declared value.
	Value Value
}

// Section is a titled run of declarations.
type Section struct {
	Title        string
	Declarations []Declaration
}

// Stylesheet is an ordered list of sections.
type Stylesheet struct {
	Sections []Section
}

// Len returns the number of declarations across all sections.
func (s *Stylesheet) Len() int {
	n := 0
	for _, section := range s.Sections {
		n += len(section.Declarations)
	}
	return n
}

// Declarations returns all declarations in emission order.
func (s *Stylesheet) Declarations() []Declaration {
	var decls []Declaration
	for _, section := range s.Sections {
		decls = append(decls, section.Declarations...)
	}
	return decls
}

// Options configures CSS output.
type Options struct {
	// Selector scopes the declarations (default :root).
	Selector Selector

	// Module wraps the output (default none).
	Module Module
}

// Formatter renders stylesheets.
type Formatter struct {
	opts Options
}

// New creates a CSS formatter with default options.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a CSS formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = SelectorRoot
	}
	return &Formatter{opts: opts}
}

// PropertyName returns the full custom property name for name.
func PropertyName(name, prefix string) string {
	return "--" + formatter.ApplyPrefix(name, prefix, "-")
}

// ValueText renders a declaration value.
func ValueText(v Value, prefix string) string {
	if v.IsRef() {
		return "var(" + PropertyName(v.ref, prefix) + ")"
	}
	return v.literal
}

// Format renders the stylesheet as a single rule block.
// Empty sections are omitted.
func (f *Formatter) Format(sheet *Stylesheet, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder

	if f.opts.Module == ModuleLit {
		sb.WriteString("import { css } from 'lit';\n\n")
		sb.WriteString(formatter.FormatHeader(opts.Header))
		sb.WriteString("export default css`\n")
	} else {
		sb.WriteString(formatter.FormatHeader(opts.Header))
	}

	fmt.Fprintf(&sb, "%s {\n", f.opts.Selector)
	first := true
	for _, section := range sheet.Sections {
		if len(section.Declarations) == 0 {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		if section.Title != "" {
			fmt.Fprintf(&sb, "  /* %s */\n", section.Title)
		}
		for _, decl := range section.Declarations {
			value := ValueText(decl.Value, opts.Prefix)
			if f.opts.Module == ModuleLit {
				value = escapeTemplate(value)
			}
			fmt.Fprintf(&sb, "  %s: %s;\n", PropertyName(decl.Name, opts.Prefix), value)
		}
	}
	sb.WriteString("}\n")

	if f.opts.Module == ModuleLit {
		sb.WriteString("`;\n")
	}

	return []byte(sb.String()), nil
}

// escapeTemplate escapes characters that are special inside a JS template literal.
func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "${", "\\${")
}
