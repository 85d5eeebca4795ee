/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads a design token source document into a token tree.
package load

import (
	"errors"
	"fmt"
	iofs "io/fs"

	"bennypowers.dev/tokengen/fs"
	"bennypowers.dev/tokengen/parser"
	"bennypowers.dev/tokengen/schema"
	"bennypowers.dev/tokengen/token"
)

// Options configures how tokens are loaded.
type Options struct {
	// Dialect overrides auto-detection from file content.
	Dialect schema.Dialect
}

// Tree loads and parses the token source at path.
//
// The returned error wraps schema.ErrSourceNotFound when path does not
// exist and schema.ErrParse when the document is malformed or its root
// is not an object.
func Tree(filesystem fs.FileSystem, path string, opts Options) (*token.Group, schema.Dialect, error) {
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	content, err := filesystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) || !filesystem.Exists(path) {
			return nil, schema.Unknown, fmt.Errorf("%w: %s", schema.ErrSourceNotFound, path)
		}
		return nil, schema.Unknown, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tree, dialect, err := parser.NewJSONParser().Parse(content, parser.Options{
		Dialect: opts.Dialect,
	})
	if err != nil {
		return nil, schema.Unknown, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return tree, dialect, nil
}
