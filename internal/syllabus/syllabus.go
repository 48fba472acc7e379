// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syllabus derives a chapter outline from a transcribed chapter and
// merges loose notes back into it.
//
// Topic ids encode the hierarchy: "2.1" is a section, "2.1.3" a subtopic of
// it. Note ids such as "Note.2.1.3.1" attach to the closest indexed
// ancestor.
package syllabus

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/notefix/pkg/types"
)

// DefaultSkipPrefixes are id prefixes that mark non-syllabus entries.
var DefaultSkipPrefixes = []string{"note", "exercise", "review"}

const (
	introID    = "Intro"
	introTitle = "Introduction"
	notePrefix = "note"
)

// ExtractOptions controls Extract.
type ExtractOptions struct {
	// DefaultChapter is used when the chapter has no title.
	DefaultChapter string

	// SkipPrefixes overrides DefaultSkipPrefixes when non-nil.
	SkipPrefixes []string

	Log zerolog.Logger
}

// Extract builds a syllabus holding only ids and titles. Entries whose id
// starts with a skip prefix are dropped. Ids with one dot open a section;
// ids with more dots become subtopics of the current section, and an
// Introduction section is created when a subtopic comes first.
func Extract(ch *types.Chapter, opts ExtractOptions) *types.Syllabus {
	skip := opts.SkipPrefixes
	if skip == nil {
		skip = DefaultSkipPrefixes
	}

	s := &types.Syllabus{
		Chapter:  ch.Chapter,
		Sections: []*types.Section{},
	}
	if s.Chapter == "" {
		s.Chapter = opts.DefaultChapter
	}

	var current *types.Section
	for _, topic := range ch.Topics {
		if hasAnyPrefixFold(topic.ID, skip) {
			continue
		}

		switch dots := strings.Count(topic.ID, "."); {
		case dots == 1:
			current = newSection(topic.ID, topic.Title)
			s.Sections = append(s.Sections, current)

		case dots >= 2:
			if current == nil {
				current = newSection(introID, introTitle)
				s.Sections = append(s.Sections, current)
				opts.Log.Debug().Str("id", topic.ID).Msg("subtopic before any section, opened introduction")
			}
			current.Subtopics = append(current.Subtopics, &types.Subtopic{
				ID:    topic.ID,
				Title: topic.Title,
				Notes: []types.NoteEntry{},
			})

		default:
			opts.Log.Debug().Str("id", topic.ID).Msg("id has no section number, skipped")
		}
	}
	return s
}

func newSection(id, title string) *types.Section {
	return &types.Section{
		ID:        id,
		Title:     title,
		Subtopics: []*types.Subtopic{},
		Notes:     []types.NoteEntry{},
	}
}

func hasAnyPrefixFold(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return true
		}
	}
	return false
}
