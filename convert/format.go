/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders the generated artifacts to bytes.
package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/convert/formatter/flatjson"
)

// Format selects how stylesheets are written.
type Format string

const (
	// FormatCSS outputs CSS custom properties in a plain stylesheet (default).
	FormatCSS Format = "css"

	// FormatLitCSS outputs CSS custom properties wrapped in Lit's css template tag.
	FormatLitCSS Format = "lit-css"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatLitCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "lit-css", "lit":
		return FormatLitCSS, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Options configures artifact rendering.
type Options struct {
	// Format selects the stylesheet flavor.
	Format Format

	// Selector scopes stylesheet declarations. Defaults to :root.
	Selector css.Selector

	// Prefix is prepended to every custom property name.
	Prefix string

	// Header is written as a comment at the top of each stylesheet.
	Header string
}

// FormatStylesheet renders a stylesheet in the configured format.
func FormatStylesheet(sheet *css.Stylesheet, opts Options) ([]byte, error) {
	var module css.Module
	switch opts.Format {
	case FormatCSS, "":
		module = css.ModuleNone
	case FormatLitCSS:
		module = css.ModuleLit
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	f := css.NewWithOptions(css.Options{
		Selector: opts.Selector,
		Module:   module,
	})
	return f.Format(sheet, formatter.Options{
		Prefix: opts.Prefix,
		Header: opts.Header,
	})
}

// FormatFlat renders the flat map as JSON. Keys are written unprefixed
// so the map mirrors the source tree.
func FormatFlat(m *flatten.Map) ([]byte, error) {
	return flatjson.New().Format(m, formatter.Options{})
}
