// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// Chapter is the document produced by the PDF transcription step: a chapter
// title and an ordered list of topics, definitions, and notes. Other
// top-level keys are kept in Extra and written back in their original
// order.
type Chapter struct {
	// Chapter is the chapter title (e.g. "Matrices").
	Chapter string `json:"chapter" yaml:"chapter"`

	// Topics holds every transcribed entry in source order.
	Topics []Topic `json:"topics" yaml:"topics"`

	// Extra holds unrecognized top-level fields verbatim.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`

	keys       []string
	hasChapter bool
}

var chapterKeys = []string{"chapter", "topics"}

// UnmarshalJSON decodes a chapter object, collecting unknown keys into
// Extra.
func (c *Chapter) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data, "chapter")
	if err != nil {
		return err
	}

	*c = Chapter{keys: make([]string, 0, len(fields))}
	for _, f := range fields {
		c.keys = append(c.keys, f.key)
		switch f.key {
		case "chapter":
			if err := json.Unmarshal(f.value, &c.Chapter); err != nil {
				return fmt.Errorf("chapter title: %w", err)
			}
			c.hasChapter = true
		case "topics":
			if err := json.Unmarshal(f.value, &c.Topics); err != nil {
				return err
			}
		default:
			if c.Extra == nil {
				c.Extra = make(map[string]json.RawMessage)
			}
			c.Extra[f.key] = f.value
		}
	}
	return nil
}

// MarshalJSON writes the fields in their decoded order. A title present on
// input is kept even when empty; topics are always written.
func (c Chapter) MarshalJSON() ([]byte, error) {
	return encodeObject(keyOrder(c.keys, chapterKeys, c.Extra), c.lookup)
}

func (c Chapter) lookup(key string) (any, bool) {
	switch key {
	case "chapter":
		return c.Chapter, c.hasChapter || c.Chapter != ""
	case "topics":
		if c.Topics == nil {
			return []Topic{}, true
		}
		return c.Topics, true
	}
	v, ok := c.Extra[key]
	return v, ok
}

// Notes is a flat notes document: a top-level JSON array of topics.
type Notes []Topic
