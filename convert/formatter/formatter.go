/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides naming and value formatting shared by the
// artifact writers.
package formatter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Header is an optional comment emitted at the top of the output.
	Header string
}

var (
	caseBoundaryPattern = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	nonWordPattern      = regexp.MustCompile(`[^\p{L}\p{N}-]`)
	hyphenRunPattern    = regexp.MustCompile(`-+`)
)

// unitlessKeys are key fragments whose numeric values carry no unit.
var unitlessKeys = []string{"font-weight", "opacity", "z-index"}

// ToKebabCase normalizes one path segment to kebab-case.
//
//	"Border Widths"  -> "border-widths"
//	"point(generic)" -> "point-generic"
//	"fooBar"         -> "foo-bar"
func ToKebabCase(s string) string {
	s = caseBoundaryPattern.ReplaceAllString(s, "$1-$2")
	s = whitespacePattern.ReplaceAllString(s, "-")
	s = nonWordPattern.ReplaceAllString(s, "-")
	s = strings.ToLower(s)
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// KebabJoin normalizes each path segment and joins them with hyphens.
func KebabJoin(path ...string) string {
	parts := make([]string, len(path))
	for i, segment := range path {
		parts[i] = ToKebabCase(segment)
	}
	return strings.Join(parts, "-")
}

// FormatValue returns the literal text for a raw token value found at key.
// Strings pass through unchanged. Numbers are bare when the key names a
// unitless property and get a px suffix otherwise.
func FormatValue(key string, raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	}

	if num, ok := FormatNumber(raw); ok {
		if IsUnitless(key) {
			return num
		}
		return num + "px"
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}
	return string(data)
}

// IsUnitless reports whether numeric values at key are written without a unit.
// Matching is by substring so that "font-weight-regular" qualifies.
func IsUnitless(key string) bool {
	key = strings.ToLower(key)
	for _, fragment := range unitlessKeys {
		if strings.Contains(key, fragment) {
			return true
		}
	}
	return false
}

// FormatNumber renders a numeric raw value with the shortest exact
// decimal representation. Returns false for non-numeric values.
func FormatNumber(raw any) (string, bool) {
	switch v := raw.(type) {
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// FormatHeader renders a header as a C-style block comment followed by a
// blank line. Returns the empty string for an empty header.
func FormatHeader(header string) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}

	lines := strings.Split(header, "\n")
	if len(lines) == 1 {
		return "/* " + lines[0] + " */\n\n"
	}

	var sb strings.Builder
	sb.WriteString("/*\n")
	for _, line := range lines {
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(" */\n\n")
	return sb.String()
}
