/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"reflect"
	"testing"

	"bennypowers.dev/tokengen/token"
)

func TestGroup_SetKeepsOrder(t *testing.T) {
	g := token.NewGroup("")
	g.Set("b", &token.Leaf{Value: 1})
	g.Set("a", &token.Leaf{Value: 2})
	g.Set("b", &token.Leaf{Value: 3})

	if got := g.Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("expected keys [b a], got %v", got)
	}

	n, ok := g.Get("b")
	if !ok {
		t.Fatal("expected child b")
	}
	if v := token.AsLeaf(n).Value; v != 3 {
		t.Errorf("expected replaced value 3, got %v", v)
	}
}

func TestGroup_Lookup(t *testing.T) {
	neutral := token.NewGroup("Neutral")
	neutral.Set("200", &token.Leaf{Value: "#2D2D2D", Type: "color"})
	stroke := token.NewGroup("Stroke")
	stroke.Set("Neutral", neutral)
	root := token.NewGroup("")
	root.Set("Stroke", stroke)

	n, ok := root.Lookup("Stroke", "Neutral", "200")
	if !ok {
		t.Fatal("expected to find Stroke/Neutral/200")
	}
	if leaf := token.AsLeaf(n); leaf == nil || leaf.Value != "#2D2D2D" {
		t.Errorf("unexpected node %#v", n)
	}

	if _, ok := root.Lookup("Stroke", "Neutral", "200", "deeper"); ok {
		t.Error("expected lookup through a leaf to fail")
	}
	if _, ok := root.Lookup("Fill"); ok {
		t.Error("expected missing path to fail")
	}
	if g := root.LookupGroup("Stroke", "Neutral"); g == nil || g.Len() != 1 {
		t.Errorf("expected Neutral group with one child, got %#v", g)
	}
	if root.CountLeaves() != 1 {
		t.Errorf("expected 1 leaf, got %d", root.CountLeaves())
	}
}

func TestParseAlias(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   []string
		wantOK bool
	}{
		{"curly", "{Color.Stroke.Brand.500}", []string{"Color", "Stroke", "Brand", "500"}, true},
		{"padded curly", "  {Semantic.Brand.Base} ", []string{"Semantic", "Brand", "Base"}, true},
		{"json pointer", map[string]any{"$ref": "#/Color/Text/Primary"}, []string{"Color", "Text", "Primary"}, true},
		{"literal", "#2D2D2D", nil, false},
		{"embedded", "0 0 0 2px {Color.Focus}", nil, false},
		{"number", 16, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := token.ParseAlias(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ParseAlias(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAlias(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseJSONPointerRef(t *testing.T) {
	got, ok := token.ParseJSONPointerRef("#/Points of Interest/a~1b")
	if !ok {
		t.Fatal("expected valid pointer")
	}
	if got != "Points of Interest.a/b" {
		t.Errorf("unexpected path %q", got)
	}
	if _, ok := token.ParseJSONPointerRef("Color/Text"); ok {
		t.Error("expected pointer without #/ to be rejected")
	}
}

func TestExtractAllRefs(t *testing.T) {
	refs := token.ExtractAllRefs("0 0 0 {Border Widths.Thick} {Color.Focus}")
	if !reflect.DeepEqual(refs, []string{"Border Widths.Thick", "Color.Focus"}) {
		t.Errorf("unexpected refs %v", refs)
	}
}
