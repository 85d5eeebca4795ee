/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tgfs "bennypowers.dev/tokengen/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokengen"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load reads the first of .config/tokengen.{yaml,yml,json} under rootDir
// and validates it. JSON files may contain comments. A missing config
// returns nil, nil.
func Load(filesystem tgfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns the config merged over defaults, or defaults if
// none is found. Errors other than absence are returned.
func LoadOrDefault(filesystem tgfs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	cfg.Merge(Default())
	return cfg, nil
}

// ExpandConsumers expands the Consumers patterns into file paths.
// Relative patterns resolve against rootDir. Literal paths are returned
// as-is, even if missing; the audit reports them when it reads them.
// Each path appears once, in first-match order.
func (c *Config) ExpandConsumers(filesystem tgfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)
	for _, pattern := range c.Consumers {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}
		matches := []string{pattern}
		if strings.ContainsAny(pattern, "*?[{") {
			var err error
			if matches, err = globFiles(filesystem, pattern); err != nil {
				return nil, fmt.Errorf("expanding consumer pattern %q: %w", pattern, err)
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				result = append(result, m)
			}
		}
	}
	return result, nil
}

// globFiles walks the static prefix of pattern and returns the regular
// files matching the rest of it. Unreadable directories are skipped.
func globFiles(filesystem tgfs.FileSystem, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	base, rest := doublestar.SplitPattern(pattern)
	if !filesystem.Exists(base) {
		return nil, nil
	}

	var matches []string
	err := fs.WalkDir(filesystem, base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(rest, filepath.ToSlash(rel)); ok {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}
