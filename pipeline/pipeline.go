/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline runs the token build: load, flatten, derive both
// stylesheets, and write the three artifacts.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"bennypowers.dev/tokengen/convert"
	"bennypowers.dev/tokengen/convert/flatten"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/fs"
	"bennypowers.dev/tokengen/internal/logger"
	"bennypowers.dev/tokengen/load"
	"bennypowers.dev/tokengen/primitive"
	"bennypowers.dev/tokengen/resolver"
	"bennypowers.dev/tokengen/schema"
	"bennypowers.dev/tokengen/semantic"
	"bennypowers.dev/tokengen/token"
)

// Default locations, relative to the working directory.
const (
	DefaultSource     = "tokens/tokens.json"
	DefaultFlat       = "tokens/generated/tokens.flat.json"
	DefaultPrimitives = "tokens/generated/primitives.css"
	DefaultSemantic   = "tokens/generated/semantic.css"
)

// Outputs are the artifact destinations.
type Outputs struct {
	Flat       string
	Primitives string
	Semantic   string
}

// DefaultOutputs returns the default artifact destinations.
func DefaultOutputs() Outputs {
	return Outputs{
		Flat:       DefaultFlat,
		Primitives: DefaultPrimitives,
		Semantic:   DefaultSemantic,
	}
}

// Options configures a pipeline run.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Source is the token document path. Defaults to DefaultSource.
	Source string

	// Outputs overrides artifact paths. Empty fields take their default.
	Outputs Outputs

	// Dialect overrides auto-detection.
	Dialect schema.Dialect

	// Format selects the stylesheet flavor.
	Format convert.Format

	// Selector scopes stylesheet declarations. Defaults to :root.
	Selector css.Selector

	// Prefix is prepended to every custom property name.
	Prefix string

	// Strict fails the run when two source paths flatten to the same key
	// or generated properties reference each other in a loop.
	Strict bool
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = fs.NewOSFileSystem()
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	defaults := DefaultOutputs()
	if o.Outputs.Flat == "" {
		o.Outputs.Flat = defaults.Flat
	}
	if o.Outputs.Primitives == "" {
		o.Outputs.Primitives = defaults.Primitives
	}
	if o.Outputs.Semantic == "" {
		o.Outputs.Semantic = defaults.Semantic
	}
	if o.Selector == "" {
		o.Selector = css.SelectorRoot
	}
	return o
}

// Result is everything a run derives from the source, before writing.
type Result struct {
	Tree       *token.Group
	Dialect    schema.Dialect
	Flat       *flatten.Map
	Primitives *primitive.Result
	Semantic   *css.Stylesheet
	Graph      *resolver.DependencyGraph

	artifacts []artifact
}

// Generate loads the source and renders every artifact in memory.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	tree, dialect, err := load.Tree(opts.FS, opts.Source, load.Options{Dialect: opts.Dialect})
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %s (%s dialect, %d tokens)", opts.Source, dialect, tree.CountLeaves())

	flat := flatten.Flatten(tree)
	for _, c := range flat.Collisions() {
		if opts.Strict {
			return nil, fmt.Errorf("%w: %q (from %s)", schema.ErrKeyCollision, c.Key, strings.Join(c.Path, "/"))
		}
		logger.Warn("key %q from %s overwrites an earlier token", c.Key, strings.Join(c.Path, "/"))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prims := primitive.Build(tree, flat)
	sem := semantic.Build(tree, flat, prims)

	graph := resolver.BuildDependencyGraph(prims.Stylesheet, sem)
	if cycle := graph.FindCycle(); cycle != nil {
		if opts.Strict {
			return nil, fmt.Errorf("%w: %s", schema.ErrCircularReference, strings.Join(cycle, " -> "))
		}
		logger.Warn("circular reference: %s", strings.Join(cycle, " -> "))
	}
	for _, name := range graph.Unresolved() {
		logger.Debug("--%s is referenced but not generated", name)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifacts, err := render(opts, flat, prims.Stylesheet, sem)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tree:       tree,
		Dialect:    dialect,
		Flat:       flat,
		Primitives: prims,
		Semantic:   sem,
		Graph:      graph,
		artifacts:  artifacts,
	}, nil
}

// PropertyNames returns every generated custom property as written to
// the stylesheets, e.g. "--ds-space-md" for prefix "ds".
func (r *Result) PropertyNames(prefix string) []string {
	names := r.Graph.Names()
	for i, name := range names {
		names[i] = css.PropertyName(name, prefix)
	}
	return names
}

// Run executes the pipeline. Nothing is written unless every stage
// succeeds; a failed write leaves existing artifacts untouched.
func Run(ctx context.Context, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	result, err := Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := writeAll(opts.FS, result.artifacts); err != nil {
		return nil, err
	}

	report := &Report{
		Source:     opts.Source,
		Dialect:    result.Dialect,
		Tokens:     result.Flat.Len(),
		Primitives: counts(result.Primitives.Stylesheet),
		Semantic:   counts(result.Semantic),
		Collisions: len(result.Flat.Collisions()),
		Unresolved: result.Graph.Unresolved(),
	}
	for _, a := range result.artifacts {
		report.Files = append(report.Files, a.Path)
	}
	return report, nil
}

// header is deterministic so repeated runs produce identical bytes.
func header(source string) string {
	return fmt.Sprintf("Generated by tokengen from %s. Do not edit.", source)
}

func render(opts Options, flat *flatten.Map, prims, sem *css.Stylesheet) ([]artifact, error) {
	flatData, err := convert.FormatFlat(flat)
	if err != nil {
		return nil, fmt.Errorf("failed to render flat map: %w", err)
	}

	cssOpts := convert.Options{
		Format:   opts.Format,
		Selector: opts.Selector,
		Prefix:   opts.Prefix,
		Header:   header(opts.Source),
	}
	primData, err := convert.FormatStylesheet(prims, cssOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to render primitives: %w", err)
	}
	semData, err := convert.FormatStylesheet(sem, cssOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to render semantic stylesheet: %w", err)
	}

	return []artifact{
		{Path: opts.Outputs.Flat, Data: flatData},
		{Path: opts.Outputs.Primitives, Data: primData},
		{Path: opts.Outputs.Semantic, Data: semData},
	}, nil
}
