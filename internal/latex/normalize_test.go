// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pdiddy/notefix/pkg/types"
)

func bs(n int) string { return strings.Repeat(`\`, n) }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "four backslashes collapse to a line break",
			in:   `1 \\\\ 2`,
			want: `1 \\ 2`,
		},
		{
			name: "three backslashes collapse",
			in:   `a \\\ b`,
			want: `a \\ b`,
		},
		{
			name: "eight backslashes collapse",
			in:   "1 " + bs(8) + " 2",
			want: `1 \\ 2`,
		},
		{
			name: "nine backslashes are left alone",
			in:   "1 " + bs(9) + " 2",
			want: "1 " + bs(9) + " 2",
		},
		{
			name: "two backslashes are already canonical",
			in:   `1 \\ 2`,
			want: `1 \\ 2`,
		},
		{
			name: "adjacent double backslash is untouched",
			in:   `a\\b`,
			want: `a\\b`,
		},
		{
			name: "single backslash between digits is promoted",
			in:   `3 \ 4`,
			want: `3 \\ 4`,
		},
		{
			name: "promotion without surrounding spaces",
			in:   `2\3`,
			want: `2 \\ 3`,
		},
		{
			name: "surrounding whitespace collapses to single spaces",
			in:   "a \t \\ \n b",
			want: `a \\ b`,
		},
		{
			name: "protected command is untouched",
			in:   `a \frac b`,
			want: `a \frac b`,
		},
		{
			name: "protected command after whitespace is untouched",
			in:   `a \ times b`,
			want: `a \ times b`,
		},
		{
			name: "prefix of a protected name protects the command",
			in:   `x \int_0^1 y \leq z`,
			want: `x \int_0^1 y \leq z`,
		},
		{
			name: "unlisted command is read as a line break",
			in:   `1 \pm 2`,
			want: `1 \\ pm 2`,
		},
		{
			name: "backslash after punctuation is untouched",
			in:   `$ \ 4$`,
			want: `$ \ 4$`,
		},
		{
			name: "leading backslash is untouched",
			in:   `\ 4`,
			want: `\ 4`,
		},
		{
			name: "trailing backslash after a digit is promoted",
			in:   `4 \`,
			want: `4 \\ `,
		},
		{
			name: "matrix with dropped row break",
			in:   `\begin{bmatrix} 1 & 2 \ 3 & 4 \end{bmatrix}`,
			want: `\begin{bmatrix} 1 & 2 \\ 3 & 4 \end{bmatrix}`,
		},
		{
			name: "matrix with over-escaped row break",
			in:   `\begin{vmatrix} a & b \\\\\\\\ c & d \end{vmatrix}`,
			want: `\begin{vmatrix} a & b \\ c & d \end{vmatrix}`,
		},
		{
			name: "consecutive bare breaks",
			in:   `1 \ 2 \ 3`,
			want: `1 \\ 2 \\ 3`,
		},
		{
			name: "text without backslashes",
			in:   "plain text, no math",
			want: "plain text, no math",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "non-ASCII text is preserved",
			in:   `résumé 2 \ 3 — fin`,
			want: `résumé 2 \\ 3 — fin`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "second pass must not change the result")
		})
	}
}

func TestNormalizeFourBackslashesBetweenDigits(t *testing.T) {
	got := Normalize(`7\\\\8`)
	assert.Equal(t, 1, strings.Count(got, LineBreak))
	assert.Equal(t, `7\\8`, got)
}

func TestNormalizeValue(t *testing.T) {
	assert.Nil(t, NormalizeValue(nil))
	assert.Equal(t, 42.0, NormalizeValue(42.0))
	assert.Equal(t, true, NormalizeValue(true))

	m := map[string]any{"k": `1 \ 2`}
	assert.Equal(t, m, NormalizeValue(m))

	assert.Equal(t, `1 \\ 2`, NormalizeValue(`1 \\\\ 2`))
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.NormalizeConfig
		in   string
		want string
	}{
		{
			name: "extra protected name",
			cfg:  types.NormalizeConfig{ExtraProtected: []string{"pm"}},
			in:   `1 \pm 2`,
			want: `1 \pm 2`,
		},
		{
			name: "narrower collapse range",
			cfg:  types.NormalizeConfig{CollapseMax: 4},
			in:   "a " + bs(6) + " b",
			want: "a " + bs(6) + " b",
		},
		{
			name: "collapse minimum below three is raised",
			cfg:  types.NormalizeConfig{CollapseMin: 1},
			in:   `a\\b`,
			want: `a\\b`,
		},
		{
			name: "inverted range is clamped",
			cfg:  types.NormalizeConfig{CollapseMin: 5, CollapseMax: 2},
			in:   "a " + bs(5) + " b",
			want: `a \\ b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.cfg)
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestCommandSet(t *testing.T) {
	s := DefaultCommands()
	require.Equal(t, len(defaultProtected), s.Len())

	assert.True(t, s.Has("frac"))
	assert.False(t, s.Has("fra"))

	assert.True(t, s.Protects("frac{1}{2}"))
	assert.True(t, s.Protects("infty"))
	assert.True(t, s.Protects("int"))
	assert.False(t, s.Protects("pm"))
	assert.False(t, s.Protects(""))
	assert.False(t, s.Protects("3 & 4"))

	s.Add("", "pm")
	assert.True(t, s.Protects("pm"))
	assert.Equal(t, len(defaultProtected)+1, s.Len())
}

// fragments are the building blocks for generated LaTeX-like snippets.
var fragments = []string{
	"a", "Z", "1", "9", " ", "\t", "\n", "$", "&", "{", "}",
	`\`, `\\`, `\\\`, `\\\\`, bs(8), bs(9),
	"frac", "times", "int", "pm", "begin{bmatrix}", "é",
}

func snippetGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		parts := rapid.SliceOfN(rapid.SampledFrom(fragments), 0, 24).Draw(t, "parts")
		return strings.Join(parts, "")
	})
}

var collapsibleRun = regexp.MustCompile(`\\+`)

func TestNormalizeIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := snippetGen().Draw(t, "s")
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent:\n in:    %q\n once:  %q\n twice: %q", s, once, twice)
		}
	})
}

func TestNormalizeLeavesNoCollapsibleRuns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := snippetGen().Draw(t, "s")
		for _, run := range collapsibleRun.FindAllString(Normalize(s), -1) {
			if n := len(run); n >= defaultCollapseMin && n <= defaultCollapseMax {
				t.Fatalf("run of %d backslashes survived in %q", n, Normalize(s))
			}
		}
	})
}

func TestNormalizeOnlyTouchesBackslashesAndSpace(t *testing.T) {
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch r {
			case '\\', ' ', '\t', '\n':
				return -1
			}
			return r
		}, s)
	}
	rapid.Check(t, func(t *rapid.T) {
		s := snippetGen().Draw(t, "s")
		if got := strip(Normalize(s)); got != strip(s) {
			t.Fatalf("non-backslash text changed: %q -> %q", strip(s), got)
		}
	})
}
