/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokengen/internal/mapfs"
	"bennypowers.dev/tokengen/load"
	"bennypowers.dev/tokengen/schema"
	"bennypowers.dev/tokengen/token"
)

func TestTree_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/tokens.json", `{
  // comments are allowed
  "Color": {
    "Stroke": {
      "Neutral": {
        "200": { "$value": "#2D2D2D", "$type": "color" }
      }
    }
  },
  "Spacing": { "8": { "$value": 8 } }
}`, 0644)

	tree, dialect, err := load.Tree(mfs, "/tokens/tokens.json", load.Options{})
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if dialect != schema.DTCG {
		t.Errorf("dialect = %v, want %v", dialect, schema.DTCG)
	}
	if got := tree.Keys(); len(got) != 2 || got[0] != "Color" || got[1] != "Spacing" {
		t.Errorf("Keys() = %v, want [Color Spacing]", got)
	}

	node, ok := tree.Lookup("Color", "Stroke", "Neutral", "200")
	if !ok {
		t.Fatal("expected Color/Stroke/Neutral/200")
	}
	leaf := token.AsLeaf(node)
	if leaf == nil || leaf.Value != "#2D2D2D" || leaf.Type != "color" {
		t.Errorf("leaf = %+v", leaf)
	}
}

func TestTree_YAMLTokensStudio(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens.yaml", `
Color:
  Text:
    Primary:
      value: "{Color.Stroke.Neutral.900}"
      type: color
`, 0644)

	tree, dialect, err := load.Tree(mfs, "/tokens.yaml", load.Options{})
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if dialect != schema.TokensStudio {
		t.Errorf("dialect = %v, want %v", dialect, schema.TokensStudio)
	}
	if tree.CountLeaves() != 1 {
		t.Errorf("CountLeaves() = %d, want 1", tree.CountLeaves())
	}
}

func TestTree_Errors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/bad.json", `{"Color": `, 0644)
	mfs.AddFile("/array.json", `[1, 2, 3]`, 0644)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", "/nope.json", schema.ErrSourceNotFound},
		{"malformed", "/bad.json", schema.ErrParse},
		{"non-object root", "/array.json", schema.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := load.Tree(mfs, tt.path, load.Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Tree() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTree_ForcedDialect(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens.json", `{"Spacing": {"8": {"value": 8}}}`, 0644)

	tree, dialect, err := load.Tree(mfs, "/tokens.json", load.Options{Dialect: schema.DTCG})
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if dialect != schema.DTCG {
		t.Errorf("dialect = %v, want %v", dialect, schema.DTCG)
	}
	// Under DTCG "value" is not a marker, so the token becomes a group.
	if tree.CountLeaves() != 0 {
		t.Errorf("CountLeaves() = %d, want 0", tree.CountLeaves())
	}
}
