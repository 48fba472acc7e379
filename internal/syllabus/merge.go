// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/notefix/pkg/types"
)

// notePrefixPattern matches a leading "Note." label in any case.
var notePrefixPattern = regexp.MustCompile(`(?i)^Note\.`)

// CleanID strips a leading "Note." from a note id and trims whitespace, so
// "Note.2.1.3.1" becomes "2.1.3.1".
func CleanID(id string) string {
	return strings.TrimSpace(notePrefixPattern.ReplaceAllString(id, ""))
}

// MergeResult summarizes a Merge.
type MergeResult struct {
	Matched   int
	Unmatched int

	// Orphans lists the ids of notes with no matching syllabus node.
	Orphans []string
}

// node is a syllabus entry that can receive content and notes.
type node struct {
	id      string
	content *any
	notes   *[]types.NoteEntry
}

func (n node) attach(note types.Topic) {
	*n.notes = append(*n.notes, types.NoteEntry{Title: note.Title, Content: note.Content})
}

// index maps section and subtopic ids to their nodes. A subtopic that
// reuses a section id replaces it.
func index(s *types.Syllabus) map[string]node {
	nodes := make(map[string]node)
	for _, sec := range s.Sections {
		if sec.Notes == nil {
			sec.Notes = []types.NoteEntry{}
		}
		nodes[sec.ID] = node{id: sec.ID, content: &sec.Content, notes: &sec.Notes}
		for _, sub := range sec.Subtopics {
			if sub.Notes == nil {
				sub.Notes = []types.NoteEntry{}
			}
			nodes[sub.ID] = node{id: sub.ID, content: &sub.Content, notes: &sub.Notes}
		}
	}
	return nodes
}

// closest walks id up its dotted ancestors ("2.1.3.1", "2.1.3", "2.1")
// and returns the first indexed node.
func closest(nodes map[string]node, id string) (node, bool) {
	for id != "" {
		if n, ok := nodes[id]; ok {
			return n, true
		}
		dot := strings.LastIndex(id, ".")
		if dot < 0 {
			break
		}
		id = id[:dot]
	}
	return node{}, false
}

// Merge distributes notes into s in place. A note whose cleaned id names a
// node exactly, and whose raw id is not a "note" label, supplies that
// node's content. Every other matched note is appended to the node's
// notes. Notes that match nothing are counted as orphans.
func Merge(s *types.Syllabus, notes []types.Topic, log zerolog.Logger) MergeResult {
	nodes := index(s)
	log.Debug().Int("nodes", len(nodes)).Msg("indexed syllabus")

	res := MergeResult{}
	for _, note := range notes {
		id := CleanID(note.ID)
		target, ok := closest(nodes, id)
		if !ok {
			res.Unmatched++
			res.Orphans = append(res.Orphans, note.ID)
			log.Warn().Str("id", note.ID).Msg("orphan note, no parent found")
			continue
		}

		isNote := strings.HasPrefix(strings.ToLower(note.ID), notePrefix)
		if id == target.id && !isNote {
			*target.content = note.Content
		} else {
			target.attach(note)
		}
		res.Matched++
	}
	return res
}
