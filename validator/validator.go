/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator audits consumer stylesheets, markup and scripts for
// custom property references that the generated stylesheets do not define.
package validator

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/tokengen/fs"
)

// Finding is a var() reference to a property nobody defines.
type Finding struct {
	// FilePath is the path to the consumer file.
	FilePath string
	// Line and Column are zero-based.
	Line   uint
	Column uint
	// Name is the referenced custom property, including the leading "--".
	Name string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (f *Finding) Error() string {
	var sb strings.Builder
	if f.FilePath != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", f.FilePath, f.Line+1, f.Column+1)
	}
	sb.WriteString(f.Message)
	if f.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(f.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Language is a consumer file kind.
type Language int

const (
	// Unsupported files are skipped.
	Unsupported Language = iota
	CSS
	HTML
	JavaScript
)

// LanguageOf picks a language from the file extension.
func LanguageOf(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return CSS
	case ".html", ".htm":
		return HTML
	case ".js", ".mjs", ".cjs", ".ts", ".mts", ".jsx", ".tsx":
		return JavaScript
	default:
		return Unsupported
	}
}

// reference is a var() call or custom property declaration found in a file.
type reference struct {
	Name        string
	Line        uint
	Column      uint
	HasFallback bool
}

// scan holds what one consumer file declares and references.
type scan struct {
	Declared   map[string]bool
	References []reference
}

// Auditor checks consumer files against a set of generated properties.
type Auditor struct {
	defined map[string]bool
	sorted  []string
	css     *cssParser
	html    *htmlParser
	js      *jsParser
}

// NewAuditor creates an auditor for the given generated property names,
// each including the leading "--".
func NewAuditor(defined []string) *Auditor {
	a := &Auditor{defined: make(map[string]bool, len(defined))}
	for _, name := range defined {
		if !a.defined[name] {
			a.defined[name] = true
			a.sorted = append(a.sorted, name)
		}
	}
	slices.Sort(a.sorted)
	return a
}

// Close releases parser resources.
func (a *Auditor) Close() {
	if a.css != nil {
		a.css.Close()
	}
	if a.html != nil {
		a.html.Close()
	}
	if a.js != nil {
		a.js.Close()
	}
}

// AuditFiles reads and audits each file. Unsupported files are skipped.
func (a *Auditor) AuditFiles(filesystem fs.FileSystem, paths []string) ([]Finding, error) {
	var findings []Finding
	for _, path := range paths {
		lang := LanguageOf(path)
		if lang == Unsupported {
			continue
		}
		content, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		findings = append(findings, a.Audit(path, lang, content)...)
	}
	return findings, nil
}

// Audit checks a single file's content. A reference is reported when the
// property is neither generated nor declared in the same file and the
// var() call has no fallback.
func (a *Auditor) Audit(path string, lang Language, content []byte) []Finding {
	var result scan
	switch lang {
	case CSS:
		if a.css == nil {
			a.css = newCSSParser()
		}
		result = a.css.Scan(content)
	case HTML:
		if a.css == nil {
			a.css = newCSSParser()
		}
		if a.html == nil {
			a.html = newHTMLParser()
		}
		result = a.html.Scan(content, a.css)
	case JavaScript:
		if a.css == nil {
			a.css = newCSSParser()
		}
		if a.js == nil {
			a.js = newJSParser()
		}
		result = a.js.Scan(content, a.css)
	default:
		return nil
	}

	var findings []Finding
	for _, ref := range result.References {
		if a.defined[ref.Name] || result.Declared[ref.Name] || ref.HasFallback {
			continue
		}
		findings = append(findings, Finding{
			FilePath:   path,
			Line:       ref.Line,
			Column:     ref.Column,
			Name:       ref.Name,
			Message:    fmt.Sprintf("%s is not a generated custom property", ref.Name),
			Suggestion: a.suggest(ref.Name),
		})
	}
	return findings
}

// suggest names a generated property that differs only by prefix. When
// several match, the first in lexical order is suggested.
func (a *Auditor) suggest(name string) string {
	bare := strings.TrimPrefix(name, "--")
	for _, defined := range a.sorted {
		if strings.HasSuffix(defined, "-"+bare) {
			return "did you mean " + defined + "?"
		}
	}
	return "define it locally or add a fallback"
}
