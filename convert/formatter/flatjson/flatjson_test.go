/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package flatjson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/convert/formatter/flatjson"
)

func TestFormat_OrderAndIndent(t *testing.T) {
	m := flatten.NewMap()
	m.Set("color-stroke-neutral-200", "#2D2D2D")
	m.Set("spacing-16", 16)
	m.Set("font-family-body", "Inter & Friends")

	out, err := flatjson.New().Format(m, formatter.Options{})
	require.NoError(t, err)

	expected := `{
  "color-stroke-neutral-200": "#2D2D2D",
  "spacing-16": 16,
  "font-family-body": "Inter & Friends"
}
`
	assert.Equal(t, expected, string(out))
	assert.True(t, json.Valid(out))
}

func TestFormat_Composite(t *testing.T) {
	m := flatten.NewMap()
	m.Set("shadow", map[string]any{"blur": 4})

	out, err := flatjson.New().Format(m, formatter.Options{Prefix: "ds"})
	require.NoError(t, err)

	expected := "{\n  \"ds-shadow\": {\n    \"blur\": 4\n  }\n}\n"
	assert.Equal(t, expected, string(out))
}

func TestFormat_Empty(t *testing.T) {
	out, err := flatjson.New().Format(flatten.NewMap(), formatter.Options{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}
