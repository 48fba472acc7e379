// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notefix/internal/document"
	"github.com/pdiddy/notefix/internal/syllabus"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge notes into a syllabus",
	Long: `Merge loads a syllabus and a notes array and places each note under the
closest syllabus entry by id: Note.2.1.3.1 lands under 2.1.3, or under 2.1
when 2.1.3 does not exist. A plain note whose id names an entry exactly
becomes that entry's content. Notes with no match are reported as orphans.`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("syllabus", "", "syllabus file (default <data_dir>/syllabus.json)")
	mergeCmd.Flags().String("notes", "", "notes file (default <data_dir>/Notes.json)")
	mergeCmd.Flags().StringP("output", "o", "", "merged file to write (default <data_dir>/chapter_complete.json)")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	syllabusPath := flagOrData(cmd, "syllabus", cfg.Files.Syllabus)
	notesPath := flagOrData(cmd, "notes", cfg.Files.Notes)
	output := flagOrData(cmd, "output", cfg.Files.Complete)

	s, err := document.LoadSyllabus(syllabusPath)
	if err != nil {
		return err
	}
	notes, err := document.LoadNotes(notesPath)
	if err != nil {
		return err
	}

	res := syllabus.Merge(s, notes, logger)

	if err := saveOutline(cmd, output, s); err != nil {
		return err
	}

	fmt.Println("Merge complete")
	fmt.Printf("  Matched:   %d items\n", res.Matched)
	fmt.Printf("  Unmatched: %d items\n", res.Unmatched)
	for _, id := range res.Orphans {
		fmt.Printf("  Orphan:    %q\n", id)
	}
	fmt.Printf("  Output:    %s\n", output)
	return nil
}

// flagOrData returns the named string flag, or name under the data
// directory when the flag is empty.
func flagOrData(cmd *cobra.Command, flag, name string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return dataPath(name)
}
