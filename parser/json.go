/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokengen/fs"
	"bennypowers.dev/tokengen/schema"
	"bennypowers.dev/tokengen/token"
)

// JSONParser parses JSON, JSONC and YAML token documents.
type JSONParser struct{}

// NewJSONParser creates a new token document parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns the token tree.
// Both formats are read into a yaml.Node tree first so that group key
// order survives parsing.
func (p *JSONParser) Parse(data []byte, opts Options) (*token.Group, schema.Dialect, error) {
	var root *yaml.Node

	if isLikelyJSON(data) {
		node, err := decodeJSON(jsonc.ToJSON(data))
		if err != nil {
			return nil, schema.Unknown, fmt.Errorf("%w: failed to parse JSON: %v", schema.ErrParse, err)
		}
		root = node
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, schema.Unknown, fmt.Errorf("%w: failed to parse YAML: %v", schema.ErrParse, err)
		}
		if len(doc.Content) == 0 {
			return nil, schema.Unknown, fmt.Errorf("%w: document is empty", schema.ErrParse)
		}
		root = doc.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, schema.Unknown, fmt.Errorf("%w: document root must be an object", schema.ErrParse)
	}

	dialect := opts.Dialect
	if dialect == schema.Unknown {
		dialect = schema.DetectDialect(root)
	}

	group, err := p.buildGroup("", root, "", dialect)
	if err != nil {
		return nil, schema.Unknown, err
	}
	return group, dialect, nil
}

// ParseFile reads and parses a token file.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Group, schema.Dialect, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, schema.Unknown, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	group, dialect, err := p.Parse(data, opts)
	if err != nil {
		return nil, schema.Unknown, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return group, dialect, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[', '/':
			return true
		default:
			return false
		}
	}
	return false
}

// buildGroup converts a mapping node into a token group.
// inheritedType is passed down from parent groups for type inheritance.
func (p *JSONParser) buildGroup(name string, node *yaml.Node, inheritedType string, dialect schema.Dialect) (*token.Group, error) {
	group := token.NewGroup(name)

	currentType := inheritedType
	if typeNode := mappingValue(node, dialect.TypeKey()); typeNode != nil && typeNode.Kind == yaml.ScalarNode {
		currentType = typeNode.Value
	}
	if descNode := mappingValue(node, "$description"); descNode != nil {
		group.Description = descNode.Value
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		valueNode := node.Content[i+1]

		if dialect.IsMetadataKey(key) {
			continue
		}

		// Bare scalars are neither leaves nor groups.
		if valueNode.Kind != yaml.MappingNode {
			continue
		}

		if leafValue := mappingValue(valueNode, dialect.ValueKey()); leafValue != nil {
			leaf, err := p.buildLeaf(valueNode, leafValue, currentType, dialect)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			group.Set(key, leaf)
			continue
		}

		child, err := p.buildGroup(key, valueNode, currentType, dialect)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		group.Set(key, child)
	}

	return group, nil
}

// buildLeaf creates a Leaf from a token mapping node.
func (p *JSONParser) buildLeaf(node, valueNode *yaml.Node, inheritedType string, dialect schema.Dialect) (*token.Leaf, error) {
	var value any
	if err := valueNode.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: failed to decode value: %v", schema.ErrParse, err)
	}

	leaf := &token.Leaf{
		Value: normalizeValue(value),
		Type:  inheritedType,
	}
	// Token's own type takes precedence over inherited
	if typeNode := mappingValue(node, dialect.TypeKey()); typeNode != nil && typeNode.Kind == yaml.ScalarNode {
		leaf.Type = typeNode.Value
	}
	descKey := "$description"
	if dialect == schema.TokensStudio {
		descKey = "description"
	}
	if descNode := mappingValue(node, descKey); descNode != nil {
		leaf.Description = descNode.Value
	}
	return leaf, nil
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// normalizeValue recursively converts map[interface{}]interface{} to map[string]any.
// YAML with numeric keys (like "10:") creates map[interface{}]interface{},
// which must be normalized for our string-keyed processing.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeValue(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeValue(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeValue(val)
		}
		return x
	default:
		return v
	}
}

// decodeJSON streams JSON tokens into a yaml.Node tree. encoding/json
// cannot preserve object key order when decoding into maps.
func decodeJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return node, nil
}

func decodeJSONValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: key},
					value,
				)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: v}, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(v.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", v)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
