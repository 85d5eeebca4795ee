/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides token source dialect handling and pipeline errors.
package schema

import (
	"fmt"
	"strings"
)

// Dialect identifies which reserved marker keys a token source uses.
type Dialect int

const (
	// Unknown represents an undetected or unrecognized dialect.
	Unknown Dialect = iota

	// DTCG marks leaves with "$value" and "$type".
	DTCG

	// TokensStudio marks leaves with "value" and "type", as exported by
	// the Tokens Studio Figma plugin.
	TokensStudio
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case DTCG:
		return "dtcg"
	case TokensStudio:
		return "tokens-studio"
	default:
		return "unknown"
	}
}

// ValueKey returns the reserved key that marks a leaf node.
func (d Dialect) ValueKey() string {
	if d == TokensStudio {
		return "value"
	}
	return "$value"
}

// TypeKey returns the reserved key that carries a leaf's optional type tag.
func (d Dialect) TypeKey() string {
	if d == TokensStudio {
		return "type"
	}
	return "$type"
}

// IsMetadataKey reports whether key is reserved metadata for this dialect.
// Metadata keys never become children of a group.
func (d Dialect) IsMetadataKey(key string) bool {
	if strings.HasPrefix(key, "$") {
		return true
	}
	if d == TokensStudio {
		switch key {
		case "value", "type", "description":
			return true
		}
	}
	return false
}

// FromString returns the dialect from a string representation.
// The empty string maps to Unknown, meaning "detect".
func FromString(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "":
		return Unknown, nil
	case "dtcg", "w3c", "draft":
		return DTCG, nil
	case "tokens-studio", "tokensstudio", "studio", "legacy":
		return TokensStudio, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownDialect, s)
	}
}
