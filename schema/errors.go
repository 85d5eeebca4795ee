/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for token pipeline operations.
var (
	// ErrSourceNotFound indicates the token source document does not exist.
	ErrSourceNotFound = errors.New("token source not found")

	// ErrParse indicates the token source document is not well-formed.
	ErrParse = errors.New("malformed token source")

	// ErrUnknownDialect indicates an unrecognized source dialect name.
	ErrUnknownDialect = errors.New("unknown token dialect")

	// ErrKeyCollision indicates two token paths flattened to the same key
	// while strict key checking is enabled.
	ErrKeyCollision = errors.New("flattened key collision")

	// ErrCircularReference indicates custom properties that reference
	// each other in a loop while strict checking is enabled.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)
