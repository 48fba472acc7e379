// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite applies single-pass transformations to note documents on
// disk: LaTeX backslash normalization, natural-order sorting, and line-level
// escape repair. Each file is read whole, transformed in memory, and written
// back only when the transformation succeeds and changes something.
package rewrite

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pdiddy/notefix/internal/document"
)

// Transform rewrites the contents of one file. It returns the new contents
// and a short human-readable detail for the status line. Returning data
// unchanged marks the file as unchanged.
type Transform func(data []byte) (out []byte, detail string, err error)

// Status is the outcome of processing one file.
type Status string

const (
	StatusChanged   Status = "changed"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)

// File names an input document and where its rewrite goes. An empty Out
// rewrites In in place.
type File struct {
	In  string
	Out string
}

// Target returns the path the rewritten document is written to.
func (f File) Target() string {
	if f.Out != "" {
		return f.Out
	}
	return f.In
}

// Options controls a batch run.
type Options struct {
	// DryRun reports what would change without writing.
	DryRun bool

	// Log receives diagnostics; zerolog.Nop() discards them.
	Log zerolog.Logger
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Changed   int
	Unchanged int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Changed + r.Unchanged + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessFile runs t over one file and writes a status line to w. When the
// output path differs from the input, an unchanged document is still copied
// there so the output always exists after a successful run.
func ProcessFile(t Transform, f File, opts Options, w io.Writer) Status {
	log := opts.Log.With().Str("file", f.In).Logger()

	data, err := document.ReadFile(f.In)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", f.In, err)
		log.Error().Err(err).Msg("read failed")
		return StatusFailed
	}

	out, detail, err := t(data)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", f.In, err)
		log.Error().Err(err).Msg("transform failed")
		return StatusFailed
	}

	changed := !bytes.Equal(out, data)
	log.Debug().Bool("changed", changed).Str("detail", detail).Msg("transformed")

	if changed || f.Target() != f.In {
		if opts.DryRun {
			log.Info().Str("target", f.Target()).Msg("dry run, not writing")
		} else if err := document.WriteFile(f.Target(), out); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", f.In, err)
			log.Error().Err(err).Msg("write failed")
			return StatusFailed
		}
	}

	if !changed {
		fmt.Fprintf(w, "unchanged: %s\n", f.In)
		return StatusUnchanged
	}

	if detail != "" {
		fmt.Fprintf(w, "changed:   %s (%s)\n", f.In, detail)
	} else {
		fmt.Fprintf(w, "changed:   %s\n", f.In)
	}
	return StatusChanged
}

// Batch processes files in order, printing per-file status to w and
// returning a summary. A failed file does not stop the batch.
func Batch(t Transform, files []File, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, f := range files {
		switch ProcessFile(t, f, opts, w) {
		case StatusChanged:
			result.Changed++
		case StatusUnchanged:
			result.Unchanged++
		case StatusFailed:
			result.Failed++
		}
	}
	if len(files) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d changed, %d unchanged, %d failed (total: %d)\n",
			result.Changed, result.Unchanged, result.Failed, result.Total())
	}
	return result
}
