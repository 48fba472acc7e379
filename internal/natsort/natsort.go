// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package natsort orders identifiers so that embedded numbers compare by
// value: "note2" sorts before "note10".
package natsort

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/notefix/pkg/types"
)

// Chunk is one run of a split key: either all ASCII digits or no digits.
type Chunk struct {
	Text    string
	Numeric bool
}

// Split breaks s into alternating text and digit runs. The first chunk is
// always text and may be empty, so two keys always line up kind by kind.
func Split(s string) []Chunk {
	chunks := []Chunk{}
	start := 0
	numeric := false
	for i := 0; i < len(s); i++ {
		d := isDigit(s[i])
		if d == numeric {
			continue
		}
		chunks = append(chunks, Chunk{Text: s[start:i], Numeric: numeric})
		start, numeric = i, d
	}
	return append(chunks, Chunk{Text: s[start:], Numeric: numeric})
}

// Compare returns -1, 0, or +1 as a sorts before, equal to, or after b.
// Digit runs compare as unbounded integers; "007" and "7" are equal.
// Text runs compare byte by byte. When every chunk matches, the key with
// fewer chunks sorts first.
func Compare(a, b string) int {
	ca, cb := Split(a), Split(b)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		var c int
		if ca[i].Numeric && cb[i].Numeric {
			c = compareDigits(ca[i].Text, cb[i].Text)
		} else {
			c = strings.Compare(ca[i].Text, cb[i].Text)
		}
		if c != 0 {
			return c
		}
	}
	switch {
	case len(ca) < len(cb):
		return -1
	case len(ca) > len(cb):
		return 1
	}
	return 0
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Comparer compares two keys.
type Comparer func(a, b string) int

// ComparerFor returns the comparison function for the given collation.
// CollationLocale compares like a numeric, case- and accent-insensitive
// locale sort.
func ComparerFor(c types.Collation) (Comparer, error) {
	switch c {
	case types.CollationNatural, "":
		return Compare, nil
	case types.CollationLocale:
		col := collate.New(language.Und, collate.Numeric, collate.Loose)
		return col.CompareString, nil
	default:
		return nil, fmt.Errorf("unsupported collation %q: use %s or %s", c, types.CollationNatural, types.CollationLocale)
	}
}

// SortStable orders items by key using cmp, keeping the original order of
// items whose keys compare equal.
func SortStable[T any](items []T, key func(T) string, cmp Comparer) {
	if cmp == nil {
		cmp = Compare
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp(key(a), key(b))
	})
}
