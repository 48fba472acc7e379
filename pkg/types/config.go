// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NormalizeConfig holds settings for the LaTeX backslash normalizer.
type NormalizeConfig struct {
	// CollapseMin and CollapseMax bound the backslash run lengths that are
	// collapsed to a single line-break token (default 3 and 8).
	CollapseMin int `json:"collapse_min" yaml:"collapse_min"`
	CollapseMax int `json:"collapse_max" yaml:"collapse_max"`

	// ExtraProtected adds command names to the built-in protected set.
	ExtraProtected []string `json:"extra_protected,omitempty" yaml:"extra_protected,omitempty"`

	// Indent is the number of spaces used when rewriting the file (default 2).
	Indent int `json:"indent" yaml:"indent"`
}

// Collation selects how note ids are compared when sorting.
type Collation string

const (
	// CollationNatural splits ids into text and number runs and compares
	// numbers by value.
	CollationNatural Collation = "natural"

	// CollationLocale uses Unicode collation with numeric ordering,
	// ignoring case and accents.
	CollationLocale Collation = "locale"
)

// SortConfig holds settings for the notes sort.
type SortConfig struct {
	// Collation selects the comparison: natural or locale.
	Collation Collation `json:"collation" yaml:"collation"`

	// Indent is the number of spaces used when rewriting the file (default 4).
	Indent int `json:"indent" yaml:"indent"`
}

// EscapeConfig holds settings for line-level escape repair.
type EscapeConfig struct {
	// Marker is the text that opens the value to repair
	// (default `"content": "`).
	Marker string `json:"marker" yaml:"marker"`

	// Lines restricts the repair to these 1-based line numbers. Empty means
	// every line whose value is not a valid JSON string.
	Lines []int `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// SyllabusConfig holds settings for syllabus extraction.
type SyllabusConfig struct {
	// DefaultChapter is used when the source document has no chapter title.
	DefaultChapter string `json:"default_chapter" yaml:"default_chapter"`

	// SkipPrefixes lists id prefixes (case-insensitive) that are not
	// syllabus entries (default note, exercise, review).
	SkipPrefixes []string `json:"skip_prefixes" yaml:"skip_prefixes"`

	// Format selects the output serialization when the output file name
	// does not imply one.
	Format OutputFormat `json:"format" yaml:"format"`
}

// OutputFormat selects the serialization of a written syllabus.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// FilesConfig names the default documents inside the data directory.
type FilesConfig struct {
	Chapter  string `json:"chapter" yaml:"chapter"`
	Notes    string `json:"notes" yaml:"notes"`
	Source   string `json:"source" yaml:"source"`
	Syllabus string `json:"syllabus" yaml:"syllabus"`
	Complete string `json:"complete" yaml:"complete"`
}

// Config groups all command configurations.
type Config struct {
	// DataDir is the directory holding the default documents (default "data").
	DataDir string      `json:"data_dir" yaml:"data_dir"`
	Files   FilesConfig `json:"files" yaml:"files"`

	// LogLevel is a zerolog level name (default "info").
	LogLevel string `json:"log_level" yaml:"log_level"`

	Normalize NormalizeConfig `json:"normalize" yaml:"normalize"`
	Sort      SortConfig      `json:"sort" yaml:"sort"`
	Escape    EscapeConfig    `json:"escape" yaml:"escape"`
	Syllabus  SyllabusConfig  `json:"syllabus" yaml:"syllabus"`
}
