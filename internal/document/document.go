// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document loads and saves the JSON and YAML files notefix works
// on. Saves are all-or-nothing: content goes to a temp file in the target
// directory and is renamed over the destination only after a full write.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notefix/pkg/types"
)

// ErrNotFound is returned when an input document does not exist.
var ErrNotFound = errors.New("file not found")

const (
	// ChapterIndent is the indent used for chapter and syllabus documents.
	ChapterIndent = 2
	// NotesIndent is the indent used for notes arrays.
	NotesIndent = 4
)

// ReadFile reads path. A missing file yields an error wrapping ErrNotFound
// that lists what the parent directory does contain.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	entries, dirErr := os.ReadDir(dir)
	if dirErr != nil {
		return nil, fmt.Errorf("%w at %s (directory %s does not exist)", ErrNotFound, path, dir)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return nil, fmt.Errorf("%w at %s (contents of %s: %v)", ErrNotFound, path, dir, names)
}

// LoadChapter reads a chapter document with a topics list.
func LoadChapter(path string) (*types.Chapter, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseChapter(data)
}

// ParseChapter decodes a chapter document. A missing or null topics key is
// an error: there is nothing to work on.
func ParseChapter(data []byte) (*types.Chapter, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing chapter: %w", err)
	}
	if raw, ok := probe["topics"]; !ok || string(bytes.TrimSpace(raw)) == "null" {
		return nil, fmt.Errorf("parsing chapter: missing %q list", "topics")
	}

	var ch types.Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, fmt.Errorf("parsing chapter: %w", err)
	}
	return &ch, nil
}

// LoadNotes reads a notes document: a top-level array of topics.
func LoadNotes(path string) (types.Notes, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	var notes types.Notes
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("parsing notes: %w", err)
	}
	return notes, nil
}

// LoadSyllabus reads a syllabus from JSON, or from YAML when the file
// extension is .yaml or .yml.
func LoadSyllabus(path string) (*types.Syllabus, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s types.Syllabus
	switch FormatFor(path, types.FormatJSON) {
	case types.FormatYAML:
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing syllabus: %w", err)
	}
	return &s, nil
}

// FormatFor picks the serialization for path from its extension, falling
// back to def.
func FormatFor(path string, def types.OutputFormat) types.OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.FormatYAML
	case ".json":
		return types.FormatJSON
	}
	return def
}

// EncodeJSON serializes v with the given indent. Non-ASCII text and
// characters such as < and & are written as-is.
func EncodeJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveJSON writes v to path as indented JSON.
func SaveJSON(path string, v any, indent int) error {
	data, err := EncodeJSON(v, indent)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// SaveYAML writes v to path as YAML.
func SaveYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return WriteFile(path, data)
}

// Save writes v to path in the given format. JSON uses indent spaces.
func Save(path string, v any, format types.OutputFormat, indent int) error {
	switch format {
	case types.FormatYAML:
		return SaveYAML(path, v)
	case types.FormatJSON, "":
		return SaveJSON(path, v, indent)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteFile replaces path with data. The parent directory is created when
// missing. An existing file keeps its permissions.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
