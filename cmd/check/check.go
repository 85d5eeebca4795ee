/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for tokengen.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokengen/cmd/settings"
	"bennypowers.dev/tokengen/internal/logger"
	"bennypowers.dev/tokengen/pipeline"
	"bennypowers.dev/tokengen/validator"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Find var() references the generated stylesheets do not define",
	Long: `Scan consumer CSS, HTML and JavaScript files for var(--name) references
to custom properties that are neither generated nor declared locally.
References with a fallback are allowed.

Patterns default to the consumers list in .config/tokengen.yaml and
support ** globs. Nothing is written.

Examples:
  tokengen check "src/**/*.css" "src/**/*.{html,js,ts}"`,
	RunE: run,
}

func init() {
	settings.AddFlags(Cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	s, err := settings.Resolve(cmd.Flags(), nil)
	if err != nil {
		return err
	}
	return Check(cmd.Context(), s, args, cmd.OutOrStdout())
}

// Check audits the consumer files matching patterns, or the configured
// consumers when patterns is empty, and prints one line per finding to
// out. It returns an error when any reference is undefined.
func Check(ctx context.Context, s *settings.Settings, patterns []string, out io.Writer) error {
	if len(patterns) > 0 {
		s.Config.Consumers = patterns
	}
	if len(s.Config.Consumers) == 0 {
		return fmt.Errorf("no consumer files: pass patterns or set consumers in .config/tokengen.yaml")
	}

	files, err := s.Config.ExpandConsumers(s.FS, s.Root)
	if err != nil {
		return err
	}
	logger.Debug("checking %d files", len(files))

	opts, err := s.PipelineOptions()
	if err != nil {
		return err
	}
	result, err := pipeline.Generate(ctx, opts)
	if err != nil {
		return err
	}

	auditor := validator.NewAuditor(result.PropertyNames(opts.Prefix))
	defer auditor.Close()

	findings, err := auditor.AuditFiles(s.FS, files)
	if err != nil {
		return err
	}

	for _, f := range findings {
		fmt.Fprintln(out, f.Error())
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d undefined custom property references in %d files", len(findings), len(files))
	}
	fmt.Fprintf(out, "%d files checked, no undefined references\n", len(files))
	return nil
}
