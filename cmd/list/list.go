/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokengen.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokengen/cmd/settings"
	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/internal/logger"
	"bennypowers.dev/tokengen/pipeline"
	"bennypowers.dev/tokengen/resolver"
	"bennypowers.dev/tokengen/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List flattened tokens or generated custom properties",
	Long: `List every flattened source token with its type and value, or with
--generated every custom property the build would write.

Examples:
  # All brand colors, with aliases followed to their values
  tokengen list --match "color-*-brand-*" --resolved

  # Generated semantic spacing aliases as JSON
  tokengen list --generated --match "space-*" --output json

  # Generated properties, referenced ones first, with their dependents
  tokengen list --generated --sort dependency --dependents`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	settings.AddFlags(Cmd.Flags())
	Cmd.Flags().String("match", "", "Only list names matching a glob pattern")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().Bool("resolved", false, "Follow aliases to their values")
	Cmd.Flags().Bool("generated", false, "List generated custom properties instead of source tokens")
	Cmd.Flags().Bool("swatch", false, "Show a 24-bit color swatch next to color values")
	Cmd.Flags().Bool("dependents", false, "With --generated, show which properties reference each entry")
	Cmd.Flags().String("sort", "declaration", "With --generated, order by: declaration, dependency")
	Cmd.Flags().String("output", "table", "Output format: table, json")
}

// Row is one listed entry.
type Row struct {
	Name  string   `json:"name"`
	Type  string   `json:"type,omitempty"`
	Value string   `json:"value"`
	Hex   string   `json:"hex,omitempty"`
	Chain []string `json:"chain,omitempty"`

	// Uses and UsedBy are set for generated rows listed with dependents.
	Uses   []string `json:"uses,omitempty"`
	UsedBy []string `json:"usedBy,omitempty"`
}

// GeneratedOptions configures GeneratedRows.
type GeneratedOptions struct {
	Prefix string

	// Resolved follows references to their literal values.
	Resolved bool

	// Dependents fills Uses and UsedBy.
	Dependents bool

	// DependencyOrder lists referenced properties before the properties
	// that reference them. Declaration order is kept if the graph has a
	// cycle.
	DependencyOrder bool
}

func run(cmd *cobra.Command, args []string) error {
	match, _ := cmd.Flags().GetString("match")
	typeFilter, _ := cmd.Flags().GetString("type")
	resolved, _ := cmd.Flags().GetBool("resolved")
	generated, _ := cmd.Flags().GetBool("generated")
	swatch, _ := cmd.Flags().GetBool("swatch")
	output, _ := cmd.Flags().GetString("output")
	dependents, _ := cmd.Flags().GetBool("dependents")
	sortBy, _ := cmd.Flags().GetString("sort")

	if sortBy != "declaration" && sortBy != "dependency" {
		return fmt.Errorf("unknown sort order: %s (valid: declaration, dependency)", sortBy)
	}

	if match != "" && !doublestar.ValidatePattern(match) {
		return fmt.Errorf("invalid --match pattern %q", match)
	}

	s, err := settings.Resolve(cmd.Flags(), nil)
	if err != nil {
		return err
	}
	opts, err := s.PipelineOptions()
	if err != nil {
		return err
	}
	result, err := pipeline.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	var rows []Row
	if generated {
		rows, err = GeneratedRows(result.Graph, GeneratedOptions{
			Prefix:          opts.Prefix,
			Resolved:        resolved,
			Dependents:      dependents,
			DependencyOrder: sortBy == "dependency",
		})
		if err != nil {
			return err
		}
	} else {
		rows = SourceRows(result.Tree, result.Flat, resolved)
	}
	rows = FilterRows(rows, match, typeFilter)

	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table", "":
		Table(cmd.OutOrStdout(), rows, swatch)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json)", output)
	}
}

// SourceRows lists every flattened leaf in traversal order.
func SourceRows(tree *token.Group, flat *flatten.Map, resolved bool) []Row {
	var rows []Row
	seen := make(map[string]int)
	flatten.Walk(tree, nil, func(path []string, leaf *token.Leaf) {
		key := formatter.KebabJoin(path...)
		row := Row{
			Name:  key,
			Type:  leaf.Type,
			Value: formatter.FormatValue(key, leaf.Value),
		}
		if resolved {
			value, chain := resolveFlat(flat, leaf.Value)
			row.Value = formatter.FormatValue(key, value)
			row.Chain = chain
		}
		row.Hex = ColorHex(row.Type, row.Value)
		// A later leaf with the same key replaces the earlier row.
		if i, ok := seen[key]; ok {
			rows[i] = row
			return
		}
		seen[key] = len(rows)
		rows = append(rows, row)
	})
	return rows
}

// resolveFlat follows alias values through the flat map. The chain lists
// the keys visited; it stops at a missing key or a loop.
func resolveFlat(flat *flatten.Map, value any) (any, []string) {
	var chain []string
	visited := make(map[string]bool)
	for {
		path, ok := token.ParseAlias(value)
		if !ok {
			return value, chain
		}
		key := formatter.KebabJoin(path...)
		next, exists := flat.Get(key)
		if !exists || visited[key] {
			return value, chain
		}
		visited[key] = true
		chain = append(chain, key)
		value = next
	}
}

// GeneratedRows lists every generated custom property, in declaration
// order unless opts.DependencyOrder is set.
func GeneratedRows(graph *resolver.DependencyGraph, opts GeneratedOptions) ([]Row, error) {
	names := graph.Names()
	if opts.DependencyOrder {
		if graph.HasCycle() {
			logger.Warn("circular reference %v, listing in declaration order", graph.FindCycle())
		} else {
			sorted, err := graph.TopologicalSort()
			if err != nil {
				return nil, err
			}
			names = sorted
		}
	}

	property := func(name string) string { return css.PropertyName(name, opts.Prefix) }
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		value, _ := graph.Value(name)
		row := Row{
			Name:  property(name),
			Value: css.ValueText(value, opts.Prefix),
		}
		if opts.Resolved && value.IsRef() {
			if literal, chain, err := graph.Resolve(name); err == nil {
				row.Value = literal
				for _, link := range chain[1:] {
					row.Chain = append(row.Chain, property(link))
				}
			}
		}
		if opts.Dependents {
			for _, dep := range graph.Dependencies(name) {
				row.Uses = append(row.Uses, property(dep))
			}
			for _, dep := range graph.Dependents(name) {
				row.UsedBy = append(row.UsedBy, property(dep))
			}
		}
		row.Hex = ColorHex("", row.Value)
		rows = append(rows, row)
	}
	return rows, nil
}

// FilterRows keeps rows whose name matches the glob and whose type
// equals typeFilter. Empty filters match everything. Generated names are
// matched without their leading "--".
func FilterRows(rows []Row, match, typeFilter string) []Row {
	if match == "" && typeFilter == "" {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, r := range rows {
		if typeFilter != "" && r.Type != typeFilter {
			continue
		}
		if match != "" {
			ok, _ := doublestar.Match(match, strings.TrimPrefix(r.Name, "--"))
			if !ok {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// colorFunctions are the CSS functions whose result is a color.
var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color("}

// ColorHex returns the normalized hex form of a color value, or the empty
// string if value is not a color. A value typed "color" may use any CSS
// color syntax; an untyped value must be a #hex or a color function.
// Values of any other type are never colors.
func ColorHex(typ, value string) string {
	switch typ {
	case "color":
	case "":
		lower := strings.ToLower(strings.TrimSpace(value))
		if !strings.HasPrefix(lower, "#") && !slices.ContainsFunc(colorFunctions, func(fn string) bool {
			return strings.HasPrefix(lower, fn)
		}) {
			return ""
		}
	default:
		return ""
	}
	if value == "" || strings.HasPrefix(value, "{") || strings.HasPrefix(value, "var(") {
		return ""
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
	if c.A < 1 {
		hex += fmt.Sprintf("%02x", int(c.A*255+0.5))
	}
	return hex
}

// ColorSwatch returns a 24-bit ANSI color block for the given hex color.
func ColorSwatch(hex string) string {
	c, err := colorful.Hex(hex[:min(len(hex), 7)])
	if err != nil {
		return ""
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as aligned columns.
func Table(w io.Writer, rows []Row, swatch bool) {
	nameW, typeW := 4, 1
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		typeW = max(typeW, len(r.Type))
	}
	for _, r := range rows {
		typ := r.Type
		if typ == "" {
			typ = "-"
		}
		prefix := ""
		if swatch && r.Hex != "" {
			prefix = ColorSwatch(r.Hex)
		}
		chain := ""
		if len(r.Chain) > 0 {
			chain = " → " + strings.Join(r.Chain, " → ")
		}
		if len(r.UsedBy) > 0 {
			chain += "  (used by " + strings.Join(r.UsedBy, ", ") + ")"
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, typ, prefix, r.Value, chain)
	}
}
