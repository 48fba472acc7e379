// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// Topic is one entry of a chapter's topic list or of a notes array.
// Fields other than id, title, and content are kept in Extra, and the key
// order of the decoded object is remembered, so a load/save round trip
// writes the object back in the same shape.
type Topic struct {
	// ID is the dotted section identifier (e.g. "2.1.3") or a note label
	// (e.g. "Note.2.1.3.1").
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable heading.
	Title string `json:"title" yaml:"title"`

	// Content is the LaTeX-bearing body. A decoded string stays a string,
	// null becomes nil, and any other JSON value is held as a RawValue.
	Content any `json:"content" yaml:"content"`

	// Extra holds unrecognized fields verbatim.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`

	keys       []string
	hasID      bool
	hasTitle   bool
	hasContent bool
}

var topicKeys = []string{"id", "title", "content"}

// HasContent reports whether the decoded object carried a content key.
func (t Topic) HasContent() bool {
	return t.hasContent || t.Content != nil
}

// ContentString returns Content when it is a string.
func (t Topic) ContentString() (string, bool) {
	s, ok := t.Content.(string)
	return s, ok
}

// UnmarshalJSON decodes a topic object, collecting unknown keys into Extra.
func (t *Topic) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data, "topic")
	if err != nil {
		return err
	}

	*t = Topic{keys: make([]string, 0, len(fields))}
	for _, f := range fields {
		t.keys = append(t.keys, f.key)
		switch f.key {
		case "id":
			if err := json.Unmarshal(f.value, &t.ID); err != nil {
				return fmt.Errorf("topic id: %w", err)
			}
			t.hasID = true
		case "title":
			if err := json.Unmarshal(f.value, &t.Title); err != nil {
				return fmt.Errorf("topic %q title: %w", t.ID, err)
			}
			t.hasTitle = true
		case "content":
			if t.Content, err = decodeContent(f.value); err != nil {
				return fmt.Errorf("topic %q content: %w", t.ID, err)
			}
			t.hasContent = true
		default:
			if t.Extra == nil {
				t.Extra = make(map[string]json.RawMessage)
			}
			t.Extra[f.key] = f.value
		}
	}
	return nil
}

// MarshalJSON writes the fields in their decoded order. Keys absent on
// input are written only when set in code; extras added in code follow in
// key order.
func (t Topic) MarshalJSON() ([]byte, error) {
	return encodeObject(keyOrder(t.keys, topicKeys, t.Extra), t.lookup)
}

func (t Topic) lookup(key string) (any, bool) {
	switch key {
	case "id":
		return t.ID, t.hasID || t.ID != ""
	case "title":
		return t.Title, t.hasTitle || t.Title != ""
	case "content":
		return t.Content, t.hasContent || t.Content != nil
	}
	v, ok := t.Extra[key]
	return v, ok
}
