/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides token source document parsing.
package parser

import (
	"bennypowers.dev/tokengen/fs"
	"bennypowers.dev/tokengen/schema"
	"bennypowers.dev/tokengen/token"
)

// Options configures token parsing.
type Options struct {
	// Dialect overrides auto-detection of the reserved marker keys.
	Dialect schema.Dialect
}

// Parser parses design token source documents into a token tree.
type Parser interface {
	// Parse parses token data and returns the root group and the dialect used.
	Parse(data []byte, opts Options) (*token.Group, schema.Dialect, error)

	// ParseFile reads and parses a token file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Group, schema.Dialect, error)
}
