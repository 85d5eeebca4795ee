/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings merges the config file, environment and flags into
// the options each command runs with.
package settings

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/tokengen/config"
	"bennypowers.dev/tokengen/convert"
	"bennypowers.dev/tokengen/convert/formatter/css"
	"bennypowers.dev/tokengen/fs"
	"bennypowers.dev/tokengen/pipeline"
	"bennypowers.dev/tokengen/schema"
)

// EnvPrefix namespaces environment overrides, e.g. TOKENGEN_PREFIX.
const EnvPrefix = "TOKENGEN"

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"root":               "root",
	"source":             "source",
	"outputs.flat":       "out-flat",
	"outputs.primitives": "out-primitives",
	"outputs.semantic":   "out-semantic",
	"prefix":             "prefix",
	"selector":           "selector",
	"dialect":            "dialect",
	"format":             "format",
	"strict":             "strict",
}

// AddFlags registers the shared flags on a command's flag set.
func AddFlags(flags *pflag.FlagSet) {
	flags.String("root", "", "Project root holding .config/tokengen.yaml (default: current directory)")
	flags.String("source", "", "Token source document (default: "+pipeline.DefaultSource+")")
	flags.String("out-flat", "", "Flat JSON output path")
	flags.String("out-primitives", "", "Primitive stylesheet output path")
	flags.String("out-semantic", "", "Semantic stylesheet output path")
	flags.String("prefix", "", "CSS variable prefix")
	flags.String("selector", "", "Rule selector for generated stylesheets (default :root)")
	flags.String("dialect", "", "Force source dialect (dtcg, tokens-studio)")
	flags.String("format", "", "Stylesheet format: "+strings.Join(convert.ValidFormats(), ", "))
	flags.Bool("strict", false, "Fail on flattened key collisions and circular references")
}

// Settings is the effective configuration for one command run.
type Settings struct {
	Root   string
	Config *config.Config
	FS     fs.FileSystem
}

// Resolve loads the config file under the project root and applies
// environment and flag overrides, in that order of precedence.
func Resolve(flags *pflag.FlagSet, filesystem fs.FileSystem) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, name := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := v.GetString("root")
	if root == "" {
		root = "."
	}

	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return nil, err
	}

	override := func(target *string, key string) {
		if value := v.GetString(key); value != "" {
			*target = value
		}
	}
	override(&cfg.Source, "source")
	override(&cfg.Outputs.Flat, "outputs.flat")
	override(&cfg.Outputs.Primitives, "outputs.primitives")
	override(&cfg.Outputs.Semantic, "outputs.semantic")
	override(&cfg.Prefix, "prefix")
	override(&cfg.Selector, "selector")
	override(&cfg.Dialect, "dialect")
	override(&cfg.Format, "format")
	cfg.Strict = cfg.Strict || v.GetBool("strict")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Settings{Root: root, Config: cfg, FS: filesystem}, nil
}

// Path resolves a configured path against the project root.
func (s *Settings) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Root, p)
}

// PipelineOptions returns the options for a pipeline run.
func (s *Settings) PipelineOptions() (pipeline.Options, error) {
	dialect, err := schema.FromString(s.Config.Dialect)
	if err != nil {
		return pipeline.Options{}, err
	}
	format, err := convert.ParseFormat(s.Config.Format)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		FS:     s.FS,
		Source: s.Path(s.Config.Source),
		Outputs: pipeline.Outputs{
			Flat:       s.Path(s.Config.Outputs.Flat),
			Primitives: s.Path(s.Config.Outputs.Primitives),
			Semantic:   s.Path(s.Config.Outputs.Semantic),
		},
		Dialect:  dialect,
		Format:   format,
		Selector: css.Selector(s.Config.Selector),
		Prefix:   s.Config.Prefix,
		Strict:   s.Config.Strict,
	}, nil
}
