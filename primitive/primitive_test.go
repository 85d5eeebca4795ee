/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/parser"
	"bennypowers.dev/tokengen/primitive"
	"bennypowers.dev/tokengen/token"
)

const source = `{
  "Color": {
    "Stroke": {
      "Neutral": {
        "200": { "$value": "#2D2D2D", "$type": "color" },
        "300": { "$value": "#3D3D3D", "$type": "color" }
      },
      "Brand": {
        "500": { "$value": "#0055FF", "$type": "color" }
      },
      "Error": {
        "500": { "$value": "#D92D20", "$type": "color" }
      }
    },
    "Text": {
      "Primary": { "$value": "{Color.Stroke.Neutral.200}" },
      "Inverse": { "$value": "#FFFFFF" }
    }
  },
  "Typography": {
    "font-weight": {
      "regular": { "$value": 400 }
    },
    "font-size": {
      "16": { "$value": 16 }
    }
  },
  "Spacing": {
    "8": { "$value": 8 }
  },
  "Border Widths": {
    "thin": { "$value": 1 }
  }
}`

func build(t *testing.T, input string) (*token.Group, *primitive.Result) {
	t.Helper()
	tree, _, err := parser.NewJSONParser().Parse([]byte(input), parser.Options{})
	require.NoError(t, err)
	return tree, primitive.Build(tree, flatten.Flatten(tree))
}

func section(t *testing.T, sheet *css.Stylesheet, title string) css.Section {
	t.Helper()
	for _, s := range sheet.Sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("section %q not found", title)
	return css.Section{}
}

func TestBuild_RampVariants(t *testing.T) {
	_, result := build(t, source)

	neutral := section(t, result.Stylesheet, "Neutral")
	require.Len(t, neutral.Declarations, 6)
	assert.Equal(t, "color-fill-neutral-200", neutral.Declarations[0].Name)
	assert.Equal(t, "color-stroke-neutral-200", neutral.Declarations[1].Name)
	assert.Equal(t, "color-icon-neutral-200", neutral.Declarations[2].Name)
	for _, decl := range neutral.Declarations[:3] {
		assert.Equal(t, "#2D2D2D", decl.Value.Text())
	}

	errs := section(t, result.Stylesheet, "Error")
	require.Len(t, errs.Declarations, 2, "feedback palettes have no icon variant")
	assert.Equal(t, "color-fill-error-500", errs.Declarations[0].Name)
	assert.Equal(t, "color-stroke-error-500", errs.Declarations[1].Name)
}

func TestBuild_MissingLevelsSkipped(t *testing.T) {
	_, result := build(t, source)

	assert.True(t, result.Has("color-fill-brand-500"))
	assert.False(t, result.Has("color-fill-brand-950"))
	assert.Empty(t, section(t, result.Stylesheet, "Success").Declarations)
}

func TestBuild_TextAliasesBecomeReferences(t *testing.T) {
	_, result := build(t, source)

	text := section(t, result.Stylesheet, "Text")
	require.Len(t, text.Declarations, 2)
	assert.Equal(t, "color-text-primary", text.Declarations[0].Name)
	assert.True(t, text.Declarations[0].Value.IsRef())
	assert.Equal(t, "color-stroke-neutral-200", text.Declarations[0].Value.RefName())
	assert.Equal(t, "color-text-inverse", text.Declarations[1].Name)
	assert.Equal(t, "#FFFFFF", text.Declarations[1].Value.Text())
}

func TestBuild_Subtrees(t *testing.T) {
	_, result := build(t, source)

	typography := section(t, result.Stylesheet, "Typography")
	require.Len(t, typography.Declarations, 2)
	assert.Equal(t, "font-weight-regular", typography.Declarations[0].Name)
	assert.Equal(t, "400", typography.Declarations[0].Value.Text())
	assert.Equal(t, "font-size-16", typography.Declarations[1].Name)
	assert.Equal(t, "16px", typography.Declarations[1].Value.Text())

	spacing := section(t, result.Stylesheet, "Spacing")
	require.Len(t, spacing.Declarations, 1)
	assert.Equal(t, "spacing-8", spacing.Declarations[0].Name)
	assert.Equal(t, "8px", spacing.Declarations[0].Value.Text())

	widths := section(t, result.Stylesheet, "Border Widths")
	require.Len(t, widths.Declarations, 1)
	assert.Equal(t, "border-width-thin", widths.Declarations[0].Name)

	assert.Empty(t, section(t, result.Stylesheet, "Radius").Declarations)
}

func TestBuild_SectionOrder(t *testing.T) {
	_, result := build(t, source)

	var titles []string
	for _, s := range result.Stylesheet.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Neutral", "Brand", "Success", "Warning", "Error", "Text",
		"Border Widths", "Typography", "Spacing", "Radius",
	}, titles)
}

func TestResolveAlias(t *testing.T) {
	_, result := build(t, source)

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"emitted name", []string{"Color", "Fill", "Neutral", "200"}, "color-fill-neutral-200"},
		{"source key", []string{"Spacing", "8"}, "spacing-8"},
		{"renamed source key", []string{"Border Widths", "thin"}, "border-width-thin"},
		{"unknown", []string{"Nope", "Missing"}, "nope-missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, result.ResolveAlias(tt.path))
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	result := primitive.Build(token.NewGroup(""), flatten.NewMap())
	assert.Zero(t, result.Stylesheet.Len())
	assert.Empty(t, result.Names())
}

func TestBuild_ForwardAliases(t *testing.T) {
	_, result := build(t, `{
  "Border Widths": {
    "focus": { "$value": "{Typography.font-size.16}" }
  },
  "Typography": {
    "font-size": {
      "body": { "$value": "{Typography.font-size.16}" },
      "16": { "$value": 16 }
    },
    "line-height": {
      "body": { "$value": "{Typography.font-size.16}" }
    }
  }
}`)

	for _, decl := range result.Stylesheet.Declarations() {
		if !decl.Value.IsRef() {
			continue
		}
		assert.Equal(t, "font-size-16", decl.Value.RefName(), decl.Name)
		assert.True(t, result.Has(decl.Value.RefName()), "%s references an undeclared property", decl.Name)
	}
	typography := section(t, result.Stylesheet, "Typography")
	require.Len(t, typography.Declarations, 3)
	assert.Equal(t, "font-size-body", typography.Declarations[0].Name)
	assert.Equal(t, "16px", typography.Declarations[1].Value.Text())
	require.Len(t, section(t, result.Stylesheet, "Border Widths").Declarations, 1)
}
