// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package natsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notefix/pkg/types"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []Chunk
	}{
		{"", []Chunk{{Text: ""}}},
		{"note", []Chunk{{Text: "note"}}},
		{"note10", []Chunk{{Text: "note"}, {Text: "10", Numeric: true}}},
		{"12", []Chunk{{Text: ""}, {Text: "12", Numeric: true}}},
		{"Note.2.1", []Chunk{
			{Text: "Note."}, {Text: "2", Numeric: true},
			{Text: "."}, {Text: "1", Numeric: true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"note2", "note10", -1},
		{"note10", "note2", 1},
		{"note1", "note1", 0},
		{"note007", "note7", 0},
		{"a", "a1", -1},
		{"a1", "a1b", -1},
		{"2.1.10", "2.1.9", 1},
		{"2.1", "2.1.1", -1},
		{"B", "a", -1},
		{"", "0", -1},
		{"x99999999999999999999999", "x100000000000000000000000", -1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestSortStable(t *testing.T) {
	type note struct{ id, tag string }
	notes := []note{
		{"note2", "a"}, {"note10", "b"}, {"note1", "c"}, {"note02", "d"},
	}

	SortStable(notes, func(n note) string { return n.id }, nil)

	ids := make([]string, len(notes))
	tags := make([]string, len(notes))
	for i, n := range notes {
		ids[i], tags[i] = n.id, n.tag
	}
	assert.Equal(t, []string{"note1", "note2", "note02", "note10"}, ids)
	assert.Equal(t, []string{"c", "a", "d", "b"}, tags, "equal keys keep input order")
}

func TestSortStableNotes(t *testing.T) {
	ids := []string{"note2", "note10", "note1"}
	SortStable(ids, func(s string) string { return s }, Compare)
	assert.Equal(t, []string{"note1", "note2", "note10"}, ids)
}

func TestComparerFor(t *testing.T) {
	natural, err := ComparerFor(types.CollationNatural)
	require.NoError(t, err)
	assert.Equal(t, -1, natural("Note2", "note1"), "natural collation is case-sensitive")

	locale, err := ComparerFor(types.CollationLocale)
	require.NoError(t, err)
	assert.Equal(t, 1, locale("Note2", "note1"), "locale collation ignores case")
	assert.Equal(t, -1, locale("note2", "note10"))
	assert.Equal(t, 0, locale("Résumé", "resume"))

	_, err = ComparerFor("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported collation")
}
