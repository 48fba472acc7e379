// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notefix/internal/latex"
	"github.com/pdiddy/notefix/internal/rewrite"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Normalize LaTeX backslash runs in chapter documents",
	Long: `Normalize rewrites the content of every topic in a chapter document so
LaTeX line breaks are spelled as exactly two backslashes. Runs of three to
eight backslashes collapse to a line break, and a lone backslash between
ordinary words becomes a spaced line break unless it starts a known LaTeX
command. Files are rewritten in place unless --output is given.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringP("output", "o", "", "write the result here instead of in place (single file only)")
	normalizeCmd.Flags().Int("indent", 0, "spaces per indent level when writing (default 2)")
	normalizeCmd.Flags().StringSlice("protect", nil, "extra LaTeX command names that are never split")

	_ = viper.BindPFlag("normalize.indent", normalizeCmd.Flags().Lookup("indent"))
	_ = viper.BindPFlag("normalize.extra_protected", normalizeCmd.Flags().Lookup("protect"))

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	files, err := inputFiles(args, cfg.Files.Chapter, output)
	if err != nil {
		return err
	}

	n := latex.New(cfg.Normalize)
	logger.Debug().Int("protected", n.Protected().Len()).Msg("normalizer ready")

	transform := rewrite.NormalizeTransform(n, cfg.Normalize.Indent, logger)
	result := rewrite.Batch(transform, files, batchOptions(cmd), os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed normalization", result.Failed)
	}
	return nil
}

func batchOptions(cmd *cobra.Command) rewrite.Options {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return rewrite.Options{DryRun: dryRun, Log: logger}
}
