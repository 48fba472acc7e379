// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex repairs backslash escaping in LaTeX snippets extracted from
// transcribed study notes.
//
// Transcription tools tend to over-escape row breaks (\\\\ or worse) or to
// drop one backslash (2 \ 3 instead of 2 \\ 3). Normalize rewrites both
// forms to the canonical LaTeX line-break token while leaving protected
// command invocations such as \frac alone. The rules are a heuristic tuned
// on transcribed matrix notes, not a LaTeX parser: a single backslash before
// an unlisted command is still read as a row break.
package latex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/notefix/pkg/types"
)

// LineBreak is the LaTeX row-break token.
const LineBreak = `\\`

const (
	defaultCollapseMin = 3
	defaultCollapseMax = 8
)

// backslashRun matches a maximal run of backslashes.
var backslashRun = regexp.MustCompile(`\\+`)

// Normalizer rewrites malformed backslash sequences. It holds no mutable
// state and is safe for concurrent use once built.
type Normalizer struct {
	protected   *CommandSet
	collapseMin int
	collapseMax int
}

// New returns a Normalizer configured by cfg. Zero values select the
// defaults: runs of 3 to 8 backslashes collapse, and the built-in protected
// set is extended by cfg.ExtraProtected.
func New(cfg types.NormalizeConfig) *Normalizer {
	n := &Normalizer{
		protected:   DefaultCommands(),
		collapseMin: cfg.CollapseMin,
		collapseMax: cfg.CollapseMax,
	}
	if n.collapseMin <= 0 {
		n.collapseMin = defaultCollapseMin
	}
	// A run of two is already canonical, and a run of one is handled by
	// promotion, so collapsing never starts below three.
	if n.collapseMin < defaultCollapseMin {
		n.collapseMin = defaultCollapseMin
	}
	if n.collapseMax <= 0 {
		n.collapseMax = defaultCollapseMax
	}
	if n.collapseMax < n.collapseMin {
		n.collapseMax = n.collapseMin
	}
	n.protected.Add(cfg.ExtraProtected...)
	return n
}

var defaultNormalizer = New(types.NormalizeConfig{})

// Normalize applies the default Normalizer to text.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// NormalizeValue applies the default Normalizer to v when it is a string
// and returns any other value unchanged.
func NormalizeValue(v any) any {
	return defaultNormalizer.NormalizeValue(v)
}

// NormalizeValue normalizes v when it is a string. Values of any other
// type, including nil, are returned unchanged.
func (n *Normalizer) NormalizeValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return n.Normalize(s)
}

// Normalize returns text with over-escaped runs collapsed and bare row
// breaks promoted. Applying it twice gives the same result as applying it
// once.
func (n *Normalizer) Normalize(text string) string {
	runs := backslashRun.FindAllStringIndex(text, -1)
	if len(runs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	last := 0

	for _, r := range runs {
		start, end := r[0], r[1]
		size := end - start

		switch {
		case size >= n.collapseMin && size <= n.collapseMax:
			b.WriteString(text[last:start])
			b.WriteString(LineBreak)
			last = end

		case size == 1:
			lead := skipSpaceBack(text, start)
			if lead == 0 || !isASCIIAlnum(text[lead-1]) {
				continue
			}
			trail := skipSpaceForward(text, end)
			if n.protected.Protects(text[trail:]) {
				continue
			}
			b.WriteString(text[last:lead])
			b.WriteString(" " + LineBreak + " ")
			last = trail
		}
	}

	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// Protected returns the command set consulted before promoting a backslash.
func (n *Normalizer) Protected() *CommandSet {
	return n.protected
}

// skipSpaceBack returns the index of the first rune of the whitespace run
// that ends at i.
func skipSpaceBack(s string, i int) int {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return i
}

// skipSpaceForward returns the index just past the whitespace run starting
// at i.
func skipSpaceForward(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isASCIIAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
