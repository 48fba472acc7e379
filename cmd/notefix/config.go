// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/notefix/internal/document"
	"github.com/pdiddy/notefix/internal/rewrite"
	"github.com/pdiddy/notefix/internal/syllabus"
	"github.com/pdiddy/notefix/pkg/types"
)

var errOutputWithMany = errors.New("--output needs exactly one input file")

func setDefaults() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("data_dir", "data")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("files.chapter", "chapter_2.json")
	viper.SetDefault("files.notes", "Notes.json")
	viper.SetDefault("files.source", "Math 11 Chapter 2.json")
	viper.SetDefault("files.syllabus", "syllabus.json")
	viper.SetDefault("files.complete", "chapter_complete.json")

	viper.SetDefault("normalize.collapse_min", 3)
	viper.SetDefault("normalize.collapse_max", 8)
	viper.SetDefault("normalize.indent", document.ChapterIndent)

	viper.SetDefault("sort.collation", string(types.CollationNatural))
	viper.SetDefault("sort.indent", document.NotesIndent)

	viper.SetDefault("escape.marker", rewrite.DefaultMarker)

	viper.SetDefault("syllabus.default_chapter", "Unit 2: Matrices & Determinants")
	viper.SetDefault("syllabus.skip_prefixes", syllabus.DefaultSkipPrefixes)
	viper.SetDefault("syllabus.format", string(types.FormatJSON))
}

// loadConfig builds the typed configuration from viper: defaults, then the
// config file, then NOTEFIX_ environment variables, then bound flags.
func loadConfig() types.Config {
	return types.Config{
		DataDir: viper.GetString("data_dir"),
		Files: types.FilesConfig{
			Chapter:  viper.GetString("files.chapter"),
			Notes:    viper.GetString("files.notes"),
			Source:   viper.GetString("files.source"),
			Syllabus: viper.GetString("files.syllabus"),
			Complete: viper.GetString("files.complete"),
		},
		LogLevel: viper.GetString("log_level"),
		Normalize: types.NormalizeConfig{
			CollapseMin:    viper.GetInt("normalize.collapse_min"),
			CollapseMax:    viper.GetInt("normalize.collapse_max"),
			ExtraProtected: viper.GetStringSlice("normalize.extra_protected"),
			Indent:         viper.GetInt("normalize.indent"),
		},
		Sort: types.SortConfig{
			Collation: types.Collation(viper.GetString("sort.collation")),
			Indent:    viper.GetInt("sort.indent"),
		},
		Escape: types.EscapeConfig{
			Marker: viper.GetString("escape.marker"),
			Lines:  viper.GetIntSlice("escape.lines"),
		},
		Syllabus: types.SyllabusConfig{
			DefaultChapter: viper.GetString("syllabus.default_chapter"),
			SkipPrefixes:   viper.GetStringSlice("syllabus.skip_prefixes"),
			Format:         types.OutputFormat(viper.GetString("syllabus.format")),
		},
	}
}

// dataPath joins name onto the configured data directory.
func dataPath(name string) string {
	return filepath.Join(cfg.DataDir, name)
}

// inputFiles returns args as rewrite targets, or the default document when
// no arguments are given. A non-empty output only applies to a single file.
func inputFiles(args []string, def, output string) ([]rewrite.File, error) {
	if len(args) == 0 {
		args = []string{dataPath(def)}
	}
	if output != "" && len(args) > 1 {
		return nil, errOutputWithMany
	}
	files := make([]rewrite.File, len(args))
	for i, a := range args {
		files[i] = rewrite.File{In: a, Out: output}
	}
	return files, nil
}
