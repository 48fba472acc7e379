// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notefix/internal/document"
	"github.com/pdiddy/notefix/internal/latex"
	"github.com/pdiddy/notefix/internal/natsort"
	"github.com/pdiddy/notefix/pkg/types"
)

func TestNormalizeChapter(t *testing.T) {
	ch := &types.Chapter{Topics: []types.Topic{
		{ID: "2.1", Content: `1 \\\\ 2`},
		{ID: "2.2", Content: `a \frac b`},
		{ID: "2.3", Content: nil},
		{ID: "2.4"},
		{ID: "2.5", Content: 7.0},
	}}
	// 2.3 carries an explicit null, so mark it as present.
	require.NoError(t, json.Unmarshal([]byte(`{"id": "2.3", "content": null}`), &ch.Topics[2]))

	res := NormalizeChapter(ch, latex.New(types.NormalizeConfig{}), zerolog.Nop())

	assert.Equal(t, NormalizeResult{Changed: 2, Unchanged: 3}, res)
	assert.Equal(t, `1 \\ 2`, ch.Topics[0].Content)
	assert.Equal(t, `a \frac b`, ch.Topics[1].Content)
	assert.Nil(t, ch.Topics[2].Content, "null content passes through")
	assert.Equal(t, "", ch.Topics[3].Content, "missing content becomes empty")
	assert.Equal(t, 7.0, ch.Topics[4].Content)
}

func TestNormalizeTransform(t *testing.T) {
	transform := NormalizeTransform(latex.New(types.NormalizeConfig{}), document.ChapterIndent, zerolog.Nop())

	in := []byte(`{"chapter": "Matrices", "topics": [{"id": "2.1", "title": "Rows", "content": "3 \\ 4"}]}`)
	out, detail, err := transform(in)
	require.NoError(t, err)
	assert.Equal(t, "1 of 1 topics normalized", detail)

	ch, err := document.ParseChapter(out)
	require.NoError(t, err)
	assert.Equal(t, `3 \\ 4`, ch.Topics[0].Content)
	assert.Equal(t, "Matrices", ch.Chapter)

	again, _, err := transform(out)
	require.NoError(t, err)
	assert.Equal(t, out, again, "normalizing a normalized document changes nothing")

	_, _, err = transform([]byte(`{"chapter": "x"}`))
	require.Error(t, err)
}

func TestNormalizeTransformEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "chapter_2.json", `{
  "chapter": "Matrices",
  "topics": [
    {"id": "2.1", "title": "Matrix", "content": "$$\\begin{bmatrix} 1 & 2 \\\\\\\\ 3 & 4 \\end{bmatrix}$$"},
    {"id": "Note", "title": "Singular", "content": "|A| = 0"}
  ]
}`)

	var log bytes.Buffer
	transform := NormalizeTransform(latex.New(types.NormalizeConfig{}), document.ChapterIndent, zerolog.Nop())
	status := ProcessFile(transform, File{In: path}, quiet(), &log)
	require.Equal(t, StatusChanged, status, log.String())

	ch, err := document.LoadChapter(path)
	require.NoError(t, err)
	assert.Equal(t, `$$\begin{bmatrix} 1 & 2 \\ 3 & 4 \end{bmatrix}$$`, ch.Topics[0].Content)
	assert.Equal(t, "|A| = 0", ch.Topics[1].Content)
}

func TestSortNotes(t *testing.T) {
	notes := types.Notes{{ID: "note2"}, {ID: "note10"}, {ID: "note1"}}
	moved := SortNotes(notes, natsort.Compare)

	assert.Equal(t, 3, moved)
	assert.Equal(t, "note1", notes[0].ID)
	assert.Equal(t, "note2", notes[1].ID)
	assert.Equal(t, "note10", notes[2].ID)
}

func TestSortTransform(t *testing.T) {
	transform := SortTransform(nil, document.NotesIndent)

	in := []byte(`[{"id": "Note.2.10", "title": "b", "extra": true}, {"id": "Note.2.9"}, {"title": "no id"}]`)
	out, detail, err := transform(in)
	require.NoError(t, err)
	assert.Contains(t, detail, `first id ""`)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got, 3)
	assert.NotContains(t, got[0], "id", "a missing id is not added")
	assert.NotContains(t, got[0], "content", "a missing content is not added")
	assert.Equal(t, "Note.2.9", got[1]["id"])
	assert.Equal(t, "Note.2.10", got[2]["id"])
	assert.Equal(t, true, got[2]["extra"], "unknown fields survive the sort")
	assert.Contains(t, string(out), "\n    {", "notes are written with a four-space indent")

	same, _, err := transform(out)
	require.NoError(t, err)
	assert.Equal(t, out, same)

	_, _, err = transform([]byte(`{"id": "x"}`))
	require.Error(t, err)
}

func TestSortTransformKeepsObjectShape(t *testing.T) {
	in := []byte(`[{"title": "a", "id": "note10", "zeta": 1, "alpha": 2}, {"title": "b"}]`)

	out, _, err := SortTransform(natsort.Compare, 0)(in)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"b"},{"title":"a","id":"note10","zeta":1,"alpha":2}]`, strings.TrimSpace(string(out)))
}

func TestNormalizeTransformKeepsChapterShape(t *testing.T) {
	transform := NormalizeTransform(latex.New(types.NormalizeConfig{}), 0, zerolog.Nop())

	in := []byte(`{"grade": 11, "chapter": "", "topics": [{"id": "2.1", "title": "T", "content": "1 \\\\ 2", "page": 9}], "source": {"pdf": "m11.pdf"}}`)
	out, _, err := transform(in)
	require.NoError(t, err)
	assert.Equal(t,
		`{"grade":11,"chapter":"","topics":[{"id":"2.1","title":"T","content":"1 \\ 2","page":9}],"source":{"pdf":"m11.pdf"}}`,
		strings.TrimSpace(string(out)))
}

func TestSortTransformLocale(t *testing.T) {
	cmp, err := natsort.ComparerFor(types.CollationLocale)
	require.NoError(t, err)

	out, _, err := SortTransform(cmp, 4)([]byte(`[{"id": "note2"}, {"id": "Note1"}]`))
	require.NoError(t, err)

	notes := types.Notes{}
	require.NoError(t, json.Unmarshal(out, &notes))
	assert.Equal(t, "Note1", notes[0].ID)
}

func TestSortEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Notes.json", `[{"id": "note2"}, {"id": "note10"}, {"id": "note1"}]`)

	var log bytes.Buffer
	result := Batch(SortTransform(natsort.Compare, 4), []File{{In: path}}, quiet(), &log)
	require.False(t, result.HasFailures(), log.String())

	notes, err := document.LoadNotes(filepath.Clean(path))
	require.NoError(t, err)
	ids := []string{notes[0].ID, notes[1].ID, notes[2].ID}
	assert.Equal(t, []string{"note1", "note2", "note10"}, ids)
}
