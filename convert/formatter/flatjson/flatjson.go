/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format writes the map as a pretty-printed JSON object in insertion order.
// Keys are written as stored; a non-empty prefix is prepended.
func (f *Formatter) Format(m *flatten.Map, opts formatter.Options) ([]byte, error) {
	entries := m.Entries()
	if len(entries) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, entry := range entries {
		key, err := encode(formatter.ApplyPrefix(entry.Key, opts.Prefix, "-"))
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", entry.Key, err)
		}
		value, err := encode(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", entry.Key, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(entries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// encode marshals v without HTML escaping, indented for the second level.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("  ", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
