// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/pdiddy/notefix/internal/document"
	"github.com/pdiddy/notefix/internal/natsort"
	"github.com/pdiddy/notefix/pkg/types"
)

func topicID(t types.Topic) string { return t.ID }

// SortNotes orders notes by id using cmp, keeping equal ids in their
// original order. It returns the number of notes that moved.
func SortNotes(notes types.Notes, cmp natsort.Comparer) int {
	before := make([]string, len(notes))
	for i, n := range notes {
		before[i] = n.ID
	}

	natsort.SortStable(notes, topicID, cmp)

	moved := 0
	for i, n := range notes {
		if n.ID != before[i] {
			moved++
		}
	}
	return moved
}

// SortTransform returns a Transform that sorts a notes array by id and
// re-encodes it with indent spaces. An already sorted array is left
// byte-for-byte untouched.
func SortTransform(cmp natsort.Comparer, indent int) Transform {
	if cmp == nil {
		cmp = natsort.Compare
	}
	return func(data []byte) ([]byte, string, error) {
		var notes types.Notes
		if err := json.Unmarshal(data, &notes); err != nil {
			return nil, "", fmt.Errorf("parsing notes: %w", err)
		}

		if slices.IsSortedFunc(notes, func(a, b types.Topic) int { return cmp(a.ID, b.ID) }) {
			return data, "", nil
		}

		moved := SortNotes(notes, cmp)
		out, err := document.EncodeJSON(notes, indent)
		if err != nil {
			return nil, "", err
		}
		return out, fmt.Sprintf("%d notes, %d moved, first id %q", len(notes), moved, notes[0].ID), nil
	}
}
