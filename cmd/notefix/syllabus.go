// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notefix/internal/document"
	"github.com/pdiddy/notefix/internal/syllabus"
	"github.com/pdiddy/notefix/pkg/types"
)

var syllabusCmd = &cobra.Command{
	Use:   "syllabus [source]",
	Short: "Extract a chapter outline from a chapter document",
	Long: `Syllabus reads a chapter document and writes its outline: one section per
id with a single dot (2.1) and one subtopic per deeper id (2.1.3). Notes,
exercises and reviews are skipped, and only ids and titles are kept. The
outline is the input of the merge command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSyllabus,
}

func init() {
	syllabusCmd.Flags().StringP("output", "o", "", "syllabus file to write (default <data_dir>/syllabus.json)")
	syllabusCmd.Flags().String("format", "", "output format when the file extension does not say: json or yaml")
	syllabusCmd.Flags().String("chapter", "", "chapter title used when the source has none")
	syllabusCmd.Flags().StringSlice("skip", nil, "id prefixes that are not syllabus entries (default note,exercise,review)")

	_ = viper.BindPFlag("syllabus.format", syllabusCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("syllabus.default_chapter", syllabusCmd.Flags().Lookup("chapter"))
	_ = viper.BindPFlag("syllabus.skip_prefixes", syllabusCmd.Flags().Lookup("skip"))

	rootCmd.AddCommand(syllabusCmd)
}

func runSyllabus(cmd *cobra.Command, args []string) error {
	source := dataPath(cfg.Files.Source)
	if len(args) == 1 {
		source = args[0]
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = dataPath(cfg.Files.Syllabus)
	}

	ch, err := document.LoadChapter(source)
	if err != nil {
		return err
	}

	s := syllabus.Extract(ch, syllabus.ExtractOptions{
		DefaultChapter: cfg.Syllabus.DefaultChapter,
		SkipPrefixes:   cfg.Syllabus.SkipPrefixes,
		Log:            logger,
	})

	subtopics := 0
	for _, sec := range s.Sections {
		subtopics += len(sec.Subtopics)
	}
	fmt.Printf("Extracted %d sections, %d subtopics from %s\n", len(s.Sections), subtopics, source)

	if err := saveOutline(cmd, output, s); err != nil {
		return err
	}
	fmt.Printf("Saved to: %s\n", output)
	return nil
}

// saveOutline writes s to output in the format its extension implies,
// falling back to the configured format.
func saveOutline(cmd *cobra.Command, output string, s *types.Syllabus) error {
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		logger.Info().Str("target", output).Msg("dry run, not writing")
		return nil
	}
	format := document.FormatFor(output, cfg.Syllabus.Format)
	if err := document.Save(output, s, format, document.ChapterIndent); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
