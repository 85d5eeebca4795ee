/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/tokengen/internal/mapfs"
	"bennypowers.dev/tokengen/schema"
	"bennypowers.dev/tokengen/testutil"
)

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Source != "design/tokens.json" {
		t.Errorf("expected source 'design/tokens.json', got %q", cfg.Source)
	}

	if cfg.Outputs.Primitives != "dist/primitives.css" {
		t.Errorf("expected primitives output 'dist/primitives.css', got %q", cfg.Outputs.Primitives)
	}

	if cfg.Prefix != "ds" {
		t.Errorf("expected prefix 'ds', got %q", cfg.Prefix)
	}

	if !cfg.Strict {
		t.Error("expected strict to be true")
	}

	if cfg.DialectValue() != schema.TokensStudio {
		t.Errorf("expected dialect TokensStudio, got %v", cfg.DialectValue())
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Selector != ":host" {
		t.Errorf("expected selector ':host', got %q", cfg.Selector)
	}

	if cfg.Format != "lit-css" {
		t.Errorf("expected format 'lit-css', got %q", cfg.Format)
	}

	if len(cfg.Consumers) != 1 || cfg.Consumers[0] != "src/**/*.css" {
		t.Errorf("unexpected consumers %v", cfg.Consumers)
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")

	_, err := Load(mfs, "/project")
	if !errors.Is(err, schema.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	for _, field := range []string{"Prefix", "Dialect", "Format"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected error to name %s, got %v", field, err)
		}
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokengen.yaml", "source: [unclosed", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		cfg, err := LoadOrDefault(mapfs.New(), "/project")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Source != "tokens/tokens.json" {
			t.Errorf("expected default source, got %q", cfg.Source)
		}
		if cfg.Selector != ":root" {
			t.Errorf("expected default selector, got %q", cfg.Selector)
		}
	})

	t.Run("partial config merges defaults", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
		cfg, err := LoadOrDefault(mfs, "/project")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Outputs.Primitives != "dist/primitives.css" {
			t.Errorf("expected configured primitives path, got %q", cfg.Outputs.Primitives)
		}
		if cfg.Outputs.Semantic != "tokens/generated/semantic.css" {
			t.Errorf("expected default semantic path, got %q", cfg.Outputs.Semantic)
		}
	})

	t.Run("invalid config is an error", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")
		if _, err := LoadOrDefault(mfs, "/project"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestExpandConsumers(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/consumers", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files, err := cfg.ExpandConsumers(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slices.Sort(files)
	expected := []string{
		"/project/src/components/button.css",
		"/project/src/components/card.js",
		"/project/src/index.html",
	}
	if !slices.Equal(files, expected) {
		t.Errorf("ExpandConsumers() = %v, want %v", files, expected)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"kebab prefix", Config{Prefix: "my-ds"}, false},
		{"dialect alias", Config{Dialect: "w3c"}, false},
		{"uppercase prefix", Config{Prefix: "DS"}, true},
		{"selector with braces", Config{Selector: ":root {"}, true},
		{"empty consumer", Config{Consumers: []string{""}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
