/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "gopkg.in/yaml.v3"

// DetectDialect inspects a parsed document and reports which marker keys it
// uses. The first leaf found in document order decides. Documents without
// any recognizable leaf are treated as DTCG.
func DetectDialect(root *yaml.Node) Dialect {
	if d := duckTypeDialect(root); d != Unknown {
		return d
	}
	return DTCG
}

// duckTypeDialect walks mapping nodes depth-first looking for a value marker.
func duckTypeDialect(node *yaml.Node) Dialect {
	if node == nil {
		return Unknown
	}
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if d := duckTypeDialect(child); d != Unknown {
				return d
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch node.Content[i].Value {
			case "$value":
				return DTCG
			case "value":
				// A group may legitimately be named "value"; only a scalar or
				// sequence payload marks a Tokens Studio leaf.
				if node.Content[i+1].Kind != yaml.MappingNode {
					return TokensStudio
				}
			}
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if d := duckTypeDialect(node.Content[i+1]); d != Unknown {
				return d
			}
		}
	}
	return Unknown
}
