/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// aliasPattern matches a value that is exactly one {token.path} reference.
	aliasPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

	// curlyBracePattern matches {token.path} references anywhere in a string.
	curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// jsonPointerPattern matches JSON pointer format: #/path/to/token
	jsonPointerPattern = regexp.MustCompile(`^#/(.+)$`)
)

// ParseAlias reports whether a raw leaf value is an alias to another token
// and returns the referenced path segments.
//
// Two forms are recognized:
//
//	"{Color.Stroke.Brand.500}"
//	{"$ref": "#/Color/Stroke/Brand/500"}
func ParseAlias(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		matches := aliasPattern.FindStringSubmatch(strings.TrimSpace(v))
		if len(matches) != 2 {
			return nil, false
		}
		return strings.Split(matches[1], "."), true
	case map[string]any:
		ref, ok := v["$ref"].(string)
		if !ok {
			return nil, false
		}
		path, ok := ParseJSONPointerRef(ref)
		if !ok {
			return nil, false
		}
		return strings.Split(path, "."), true
	}
	return nil, false
}

// ParseJSONPointerRef extracts the token path from a JSON pointer reference.
// Returns the path and true if valid, empty string and false otherwise.
func ParseJSONPointerRef(ref string) (string, bool) {
	matches := jsonPointerPattern.FindStringSubmatch(ref)
	if len(matches) != 2 {
		return "", false
	}
	parts := strings.Split(matches[1], "/")
	// Order matters: ~1 must be replaced before ~0
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		parts[i] = part
	}
	return strings.Join(parts, "."), true
}

// ExtractAllRefs extracts all curly brace references from a string.
func ExtractAllRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}
