/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokengen.
package build

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokengen/cmd/settings"
	"bennypowers.dev/tokengen/pipeline"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the flat token map and both stylesheets",
	Long: `Generate the flat JSON map, the primitive stylesheet and the semantic
stylesheet from the token source document.

Settings are read from .config/tokengen.{yaml,yml,json} under the project
root, then TOKENGEN_* environment variables (a .env file is loaded first),
then flags.

Examples:
  # Build with defaults (tokens/tokens.json -> tokens/generated/)
  tokengen build

  # Prefix every property and scope to a shadow host
  tokengen build --prefix ds --selector :host

  # Emit Lit css modules instead of plain stylesheets
  tokengen build --format lit-css`,
	Args: cobra.NoArgs,
	RunE: Run,
}

func init() {
	settings.AddFlags(Cmd.Flags())
}

// Run builds the artifacts and prints a summary.
func Run(cmd *cobra.Command, args []string) error {
	s, err := settings.Resolve(cmd.Flags(), nil)
	if err != nil {
		return err
	}
	opts, err := s.PipelineOptions()
	if err != nil {
		return err
	}

	report, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	report.Print(cmd.OutOrStdout())
	return nil
}
