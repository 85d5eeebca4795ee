/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package primitive

// Variant is a color primitive usage: fill, stroke or icon.
type Variant string

const (
	Fill   Variant = "fill"
	Stroke Variant = "stroke"
	Icon   Variant = "icon"
)

// RampLevels are the levels of the neutral and brand ramps.
var RampLevels = []string{"25", "50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// FeedbackLevels are the levels of each feedback ramp.
var FeedbackLevels = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// FeedbackTypes are the feedback palettes, in emission order.
var FeedbackTypes = []string{"success", "warning", "error"}

// TextRoles are the text color roles, in emission order.
var TextRoles = []string{"primary", "secondary", "muted", "inverse", "hover"}

// Palette describes one color ramp and the primitives derived from it.
type Palette struct {
	// Name is the palette segment of every property name.
	Name string

	// Title labels the palette's stylesheet section.
	Title string

	// Source is the flat key prefix of the ramp in the token source.
	Source string

	// Levels lists the ramp levels in emission order.
	Levels []string

	// Variants lists the properties emitted per present level.
	Variants []Variant
}

// Palettes lists every ramp in emission order.
var Palettes = []Palette{
	{Name: "neutral", Title: "Neutral", Source: "color-stroke-neutral", Levels: RampLevels, Variants: []Variant{Fill, Stroke, Icon}},
	{Name: "brand", Title: "Brand", Source: "color-stroke-brand", Levels: RampLevels, Variants: []Variant{Fill, Stroke, Icon}},
	{Name: "success", Title: "Success", Source: "color-stroke-success", Levels: FeedbackLevels, Variants: []Variant{Fill, Stroke}},
	{Name: "warning", Title: "Warning", Source: "color-stroke-warning", Levels: FeedbackLevels, Variants: []Variant{Fill, Stroke}},
	{Name: "error", Title: "Error", Source: "color-stroke-error", Levels: FeedbackLevels, Variants: []Variant{Fill, Stroke}},
}

// Subtree names a source group whose leaves are emitted one property each.
type Subtree struct {
	// Title labels the stylesheet section.
	Title string

	// Path locates the group in the token tree. Segments match by
	// kebab-case so "Border Widths" also finds "border-widths".
	Path []string

	// Prefix is prepended to every property name. Empty means none.
	Prefix string
}

// Subtrees lists the generic primitive groups in emission order.
var Subtrees = []Subtree{
	{Title: "Border Widths", Path: []string{"Border Widths"}, Prefix: "border-width"},
	{Title: "Typography", Path: []string{"Typography"}},
	{Title: "Spacing", Path: []string{"Spacing"}, Prefix: "spacing"},
	{Title: "Radius", Path: []string{"Radius"}, Prefix: "radius"},
}

// ColorName returns the property name of a ramp primitive,
// e.g. "color-fill-neutral-200".
func ColorName(variant Variant, palette, level string) string {
	return "color-" + string(variant) + "-" + palette + "-" + level
}

// TextName returns the property name of a text role primitive,
// e.g. "color-text-primary".
func TextName(role string) string {
	return "color-text-" + role
}
