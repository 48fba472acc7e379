// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultMarker opens the string value repaired by EscapeLines.
const DefaultMarker = `"content": "`

var (
	// ErrLineOutOfRange is returned when a requested line does not exist.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrNoMarker is returned when a requested line has no marker.
	ErrNoMarker = errors.New("marker not found")

	// ErrNoClosingQuote is returned when the value has no closing quote.
	ErrNoClosingQuote = errors.New("closing quote not found")
)

// EscapeOptions selects the lines EscapeLines repairs.
type EscapeOptions struct {
	// Marker opens the value to repair. Empty uses DefaultMarker.
	Marker string

	// Lines lists 1-based line numbers to repair unconditionally. When
	// empty, every line carrying the marker whose value is not a valid JSON
	// string is repaired.
	Lines []int
}

// EscapeReport describes an EscapeLines run.
type EscapeReport struct {
	// Fixed lists the 1-based line numbers that were rewritten.
	Fixed []int

	// Valid reports whether the whole document parses as JSON afterwards.
	Valid bool
}

// EscapeValue doubles every backslash in s, turning raw LaTeX into the
// body of a JSON string literal.
func EscapeValue(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// splitValue locates the value on line: it starts right after marker and
// ends at the last double quote on the line.
func splitValue(line, marker string) (prefix, value, suffix string, err error) {
	start := strings.Index(line, marker)
	if start < 0 {
		return "", "", "", ErrNoMarker
	}
	valueStart := start + len(marker)
	valueEnd := strings.LastIndex(line, `"`)
	if valueEnd < valueStart {
		return "", "", "", ErrNoClosingQuote
	}
	return line[:valueStart], line[valueStart:valueEnd], line[valueEnd:], nil
}

// FixLine escapes the backslashes of the marked value on line.
func FixLine(line, marker string) (string, error) {
	prefix, value, suffix, err := splitValue(line, marker)
	if err != nil {
		return "", err
	}
	return prefix + EscapeValue(value) + suffix, nil
}

// validString reports whether value is a well-formed JSON string body.
func validString(value string) bool {
	return json.Valid([]byte(`"` + value + `"`))
}

// EscapeLines repairs invalid escape sequences line by line in a JSON
// document that may not parse at all. Line endings are preserved.
func EscapeLines(data []byte, opts EscapeOptions) ([]byte, EscapeReport, error) {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	lines := strings.SplitAfter(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var report EscapeReport

	if len(opts.Lines) > 0 {
		seen := make(map[int]bool, len(opts.Lines))
		for _, n := range opts.Lines {
			if seen[n] {
				continue
			}
			seen[n] = true
			if n < 1 || n > len(lines) {
				return nil, report, fmt.Errorf("line %d: file has %d lines: %w", n, len(lines), ErrLineOutOfRange)
			}
			fixed, err := FixLine(lines[n-1], marker)
			if err != nil {
				return nil, report, fmt.Errorf("line %d: %w", n, err)
			}
			lines[n-1] = fixed
			report.Fixed = append(report.Fixed, n)
		}
	} else {
		for i, line := range lines {
			_, value, _, err := splitValue(line, marker)
			if err != nil || validString(value) {
				continue
			}
			lines[i], _ = FixLine(line, marker)
			report.Fixed = append(report.Fixed, i+1)
		}
	}

	out := []byte(strings.Join(lines, ""))
	report.Valid = json.Valid(out)
	return out, report, nil
}

// EscapeTransform returns a Transform that runs EscapeLines.
func EscapeTransform(opts EscapeOptions) Transform {
	return func(data []byte) ([]byte, string, error) {
		out, report, err := EscapeLines(data, opts)
		if err != nil {
			return nil, "", err
		}
		if len(report.Fixed) == 0 {
			return data, "", nil
		}
		detail := fmt.Sprintf("fixed lines %v", report.Fixed)
		if !report.Valid {
			detail += ", document is still not valid JSON"
		}
		return out, detail, nil
	}
}
