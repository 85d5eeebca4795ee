/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package semantic

import "bennypowers.dev/tokengen/primitive"

// slot copies the token at a source flat key into a named property.
type slot struct {
	Source string
	Name   string
}

// alias is a property that references another property by name.
type alias struct {
	Name string
	Ref  string
}

// literal is a property with a fixed value.
type literal struct {
	Name  string
	Value string
}

// slots builds one slot per item: "<source>-<item>" to "<name>-<item>".
func slots(source, name string, items ...string) []slot {
	result := make([]slot, len(items))
	for i, item := range items {
		result[i] = slot{Source: source + "-" + item, Name: name + "-" + item}
	}
	return result
}

var backgroundSlots = slots("semantic-background", "background",
	"base", "raised", "interactive", "overlay", "backdrop", "muted")

var borderSlots = slots("semantic-border", "border",
	"subtle", "muted", "strong")

var brandSlots = slots("semantic-brand", "brand",
	"base", "hover", "active", "pressed", "muted", "mode")

var focusSlots = slots("semantic-focus", "focus", "ring")

// feedbackItems are emitted per feedback type.
var feedbackItems = []string{"base", "surface", "text-on-color"}

func feedbackSlots() []slot {
	var result []slot
	for _, kind := range primitive.FeedbackTypes {
		result = append(result, slots("semantic-feedback-"+kind, "feedback-"+kind, feedbackItems...)...)
	}
	return result
}

// textAliases always point at the primitive text roles.
func textAliases() []alias {
	result := make([]alias, len(primitive.TextRoles))
	for i, role := range primitive.TextRoles {
		result[i] = alias{Name: "text-" + role, Ref: primitive.TextName(role)}
	}
	return result
}

// toneAliases are emitted only when the referenced primitive exists.
var toneAliases = []alias{
	{Name: "grey-default", Ref: primitive.ColorName(primitive.Fill, "neutral", "200")},
	{Name: "grey-focused", Ref: primitive.ColorName(primitive.Fill, "neutral", "200")},
	{Name: "grey-hover", Ref: primitive.ColorName(primitive.Fill, "neutral", "300")},
	{Name: "grey-disabled", Ref: primitive.ColorName(primitive.Fill, "neutral", "800")},
}

// Scale aliases are unconditional: consumers resolve them at runtime.

var typographyAliases = []alias{
	{Name: "font-body", Ref: "font-family-sans"},
	{Name: "font-code", Ref: "font-family-mono"},
	{Name: "text-size-caption", Ref: "font-size-12"},
	{Name: "text-size-small", Ref: "font-size-14"},
	{Name: "text-size-body", Ref: "font-size-16"},
	{Name: "text-size-lead", Ref: "font-size-20"},
	{Name: "text-size-heading", Ref: "font-size-24"},
	{Name: "text-size-display", Ref: "font-size-32"},
	{Name: "text-weight-body", Ref: "font-weight-regular"},
	{Name: "text-weight-emphasis", Ref: "font-weight-medium"},
	{Name: "text-weight-heading", Ref: "font-weight-semibold"},
	{Name: "text-weight-strong", Ref: "font-weight-bold"},
	{Name: "text-leading-tight", Ref: "line-height-tight"},
	{Name: "text-leading-body", Ref: "line-height-normal"},
	{Name: "text-leading-relaxed", Ref: "line-height-relaxed"},
}

var spacingAliases = []alias{
	{Name: "space-none", Ref: "spacing-0"},
	{Name: "space-xxs", Ref: "spacing-2"},
	{Name: "space-xs", Ref: "spacing-4"},
	{Name: "space-sm", Ref: "spacing-8"},
	{Name: "space-md", Ref: "spacing-16"},
	{Name: "space-lg", Ref: "spacing-24"},
	{Name: "space-xl", Ref: "spacing-32"},
	{Name: "space-xxl", Ref: "spacing-48"},
}

var radiusAliases = []alias{
	{Name: "corner-none", Ref: "radius-none"},
	{Name: "corner-small", Ref: "radius-sm"},
	{Name: "corner-medium", Ref: "radius-md"},
	{Name: "corner-large", Ref: "radius-lg"},
	{Name: "corner-pill", Ref: "radius-full"},
}

var borderWidthAliases = []alias{
	{Name: "border-width-default", Ref: "border-width-thin"},
	{Name: "border-width-emphasis", Ref: "border-width-medium"},
	{Name: "border-width-focus", Ref: "border-width-thick"},
}

var shadowLiterals = []literal{
	{Name: "shadow-sm", Value: "0 1px 2px rgba(0, 0, 0, 0.06), 0 1px 3px rgba(0, 0, 0, 0.1)"},
	{Name: "shadow-md", Value: "0 2px 4px -2px rgba(0, 0, 0, 0.1), 0 4px 6px -1px rgba(0, 0, 0, 0.1)"},
	{Name: "shadow-lg", Value: "0 4px 6px -4px rgba(0, 0, 0, 0.1), 0 10px 15px -3px rgba(0, 0, 0, 0.1)"},
	{Name: "shadow-overlay", Value: "0 8px 10px -6px rgba(0, 0, 0, 0.2), 0 20px 25px -5px rgba(0, 0, 0, 0.2)"},
}

// Open-ended groups whose entries are emitted one property each.
var (
	pointsOfInterestPath = []string{"Semantic", "Points of Interest"}
	clustersPath         = []string{"Color", "Connections", "Clusters"}
	genericConnection    = slot{Source: "color-connections-generic", Name: "connection-generic"}
)
