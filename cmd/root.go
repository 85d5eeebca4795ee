/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokengen.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokengen/cmd/build"
	"bennypowers.dev/tokengen/cmd/check"
	"bennypowers.dev/tokengen/cmd/list"
	"bennypowers.dev/tokengen/cmd/settings"
	"bennypowers.dev/tokengen/cmd/version"
	"bennypowers.dev/tokengen/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokengen",
	Short: "Generate CSS custom properties from design tokens",
	Long: `tokengen reads a design token source file and writes a flat JSON map,
a primitive CSS stylesheet and a semantic CSS stylesheet.

Running tokengen with no subcommand is the same as running "tokengen build".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is not an error.
		_ = godotenv.Load()
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
		return nil
	},
	RunE: build.Run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details")
	settings.AddFlags(rootCmd.Flags())

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
