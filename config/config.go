/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokengen.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bennypowers.dev/tokengen/convert/formatter"
	"bennypowers.dev/tokengen/schema"
)

// Config represents the tokengen configuration.
type Config struct {
	// Source is the token document path, relative to the project root.
	Source string `yaml:"source" json:"source" mapstructure:"source"`

	// Outputs overrides artifact paths.
	Outputs Outputs `yaml:"outputs" json:"outputs" mapstructure:"outputs"`

	// Selector scopes stylesheet declarations, e.g. ":root" or ":host".
	Selector string `yaml:"selector" json:"selector" mapstructure:"selector" validate:"omitempty,excludesall={};"`

	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix" mapstructure:"prefix" validate:"omitempty,kebab"`

	// Dialect forces the source dialect (optional).
	// Valid values: "dtcg", "tokens-studio"
	Dialect string `yaml:"dialect" json:"dialect" mapstructure:"dialect" validate:"omitempty,dialect"`

	// Format selects the stylesheet flavor: "css" or "lit-css".
	Format string `yaml:"format" json:"format" mapstructure:"format" validate:"omitempty,oneof=css lit lit-css"`

	// Strict fails the build on flattened key collisions.
	Strict bool `yaml:"strict" json:"strict" mapstructure:"strict"`

	// Consumers are glob patterns of CSS, HTML and JS files audited by check.
	Consumers []string `yaml:"consumers" json:"consumers" mapstructure:"consumers" validate:"dive,required"`
}

// Outputs are the artifact paths.
type Outputs struct {
	Flat       string `yaml:"flat" json:"flat" mapstructure:"flat"`
	Primitives string `yaml:"primitives" json:"primitives" mapstructure:"primitives"`
	Semantic   string `yaml:"semantic" json:"semantic" mapstructure:"semantic"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Source: "tokens/tokens.json",
		Outputs: Outputs{
			Flat:       "tokens/generated/tokens.flat.json",
			Primitives: "tokens/generated/primitives.css",
			Semantic:   "tokens/generated/semantic.css",
		},
		Selector: ":root",
	}
}

// Merge fills empty fields of c from defaults.
func (c *Config) Merge(defaults *Config) {
	if c.Source == "" {
		c.Source = defaults.Source
	}
	if c.Outputs.Flat == "" {
		c.Outputs.Flat = defaults.Outputs.Flat
	}
	if c.Outputs.Primitives == "" {
		c.Outputs.Primitives = defaults.Outputs.Primitives
	}
	if c.Outputs.Semantic == "" {
		c.Outputs.Semantic = defaults.Outputs.Semantic
	}
	if c.Selector == "" {
		c.Selector = defaults.Selector
	}
	if c.Prefix == "" {
		c.Prefix = defaults.Prefix
	}
	if c.Dialect == "" {
		c.Dialect = defaults.Dialect
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if len(c.Consumers) == 0 {
		c.Consumers = defaults.Consumers
	}
	c.Strict = c.Strict || defaults.Strict
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("kebab", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return formatter.ToKebabCase(s) == s
	})
	_ = v.RegisterValidation("dialect", func(fl validator.FieldLevel) bool {
		_, err := schema.FromString(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field values. The returned error wraps
// schema.ErrInvalidConfig and names every offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", schema.ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Namespace(), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", schema.ErrInvalidConfig, strings.Join(msgs, "; "))
}

// DialectValue returns the parsed dialect from the Dialect field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) DialectValue() schema.Dialect {
	d, err := schema.FromString(c.Dialect)
	if err != nil {
		return schema.Unknown
	}
	return d
}
