// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notefix/internal/rewrite"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [files...]",
	Short: "Escape raw LaTeX backslashes that break JSON",
	Long: `Escape repairs documents that no longer parse because a content value
holds raw LaTeX such as \sqrt. It works line by line on the raw text: the
value after the marker, up to the last quote on the line, has its
backslashes doubled.

With --line only the named lines are repaired. Without it, every line whose
value is not a valid JSON string is repaired. Commands that happen to be
JSON escapes (\frac, \times, \beta) are only caught with --line.`,
	RunE: runEscape,
}

func init() {
	escapeCmd.Flags().IntSlice("line", nil, "1-based line number to repair (repeatable)")
	escapeCmd.Flags().String("marker", "", "text that opens the value to repair (default is the content key)")
	escapeCmd.Flags().StringP("output", "o", "", "write the result here instead of in place (single file only)")

	_ = viper.BindPFlag("escape.lines", escapeCmd.Flags().Lookup("line"))
	_ = viper.BindPFlag("escape.marker", escapeCmd.Flags().Lookup("marker"))

	rootCmd.AddCommand(escapeCmd)
}

func runEscape(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	files, err := inputFiles(args, cfg.Files.Chapter, output)
	if err != nil {
		return err
	}

	opts := rewrite.EscapeOptions{
		Marker: cfg.Escape.Marker,
		Lines:  cfg.Escape.Lines,
	}
	logger.Debug().Ints("lines", opts.Lines).Str("marker", opts.Marker).Msg("escape options")

	result := rewrite.Batch(rewrite.EscapeTransform(opts), files, batchOptions(cmd), os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed escape repair", result.Failed)
	}
	return nil
}
