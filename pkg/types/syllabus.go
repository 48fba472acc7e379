// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NoteEntry is a note attached to a syllabus node during a merge.
type NoteEntry struct {
	Title   string `json:"title" yaml:"title"`
	Content any    `json:"content" yaml:"content"`
}

// Subtopic is a second-level syllabus entry such as "2.1.1".
type Subtopic struct {
	ID      string      `json:"id" yaml:"id"`
	Title   string      `json:"title" yaml:"title"`
	Content any         `json:"content,omitempty" yaml:"content,omitempty"`
	Notes   []NoteEntry `json:"notes" yaml:"notes"`
}

// Section is a first-level syllabus entry such as "2.1".
type Section struct {
	ID        string      `json:"id" yaml:"id"`
	Title     string      `json:"title" yaml:"title"`
	Content   any         `json:"content,omitempty" yaml:"content,omitempty"`
	Subtopics []*Subtopic `json:"subtopics" yaml:"subtopics"`
	Notes     []NoteEntry `json:"notes" yaml:"notes"`
}

// Syllabus is the lightweight outline of a chapter: section and subtopic
// ids and titles, optionally filled with merged content and notes.
type Syllabus struct {
	Chapter  string     `json:"chapter" yaml:"chapter"`
	Sections []*Section `json:"sections" yaml:"sections"`
}
