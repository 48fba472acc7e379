// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notefix/internal/natsort"
	"github.com/pdiddy/notefix/internal/rewrite"
)

var sortCmd = &cobra.Command{
	Use:   "sort [files...]",
	Short: "Sort notes arrays by id in natural order",
	Long: `Sort orders the objects of a notes array by their id so that numbers
compare by value: note2 comes before note10. The sort is stable, unknown
fields are kept, and a file that is already in order is left untouched.`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().String("collation", "", "id comparison: natural or locale (default natural)")
	sortCmd.Flags().Int("indent", 0, "spaces per indent level when writing (default 4)")
	sortCmd.Flags().StringP("output", "o", "", "write the result here instead of in place (single file only)")

	_ = viper.BindPFlag("sort.collation", sortCmd.Flags().Lookup("collation"))
	_ = viper.BindPFlag("sort.indent", sortCmd.Flags().Lookup("indent"))

	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	files, err := inputFiles(args, cfg.Files.Notes, output)
	if err != nil {
		return err
	}

	cmp, err := natsort.ComparerFor(cfg.Sort.Collation)
	if err != nil {
		return err
	}

	result := rewrite.Batch(rewrite.SortTransform(cmp, cfg.Sort.Indent), files, batchOptions(cmd), os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed sorting", result.Failed)
	}
	return nil
}
