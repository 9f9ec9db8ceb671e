// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs manifest documents through decode and parse, one
// document at a time. A failing document is reported in its own result and
// never affects the rest of a batch.
// See docs/ARCHITECTURE § Pipeline Interface.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/rutelister/internal/manifest"
	"github.com/pdiddy/rutelister/internal/rtf"
	"github.com/pdiddy/rutelister/pkg/types"
)

// Process converts one RTF manifest into stop records. filename is used for
// naming only, never for parsing. Failures are returned inside the result,
// not raised: the document boundary is the only error surface of the core.
func Process(data []byte, filename string, profile manifest.Profile) types.DocumentResult {
	result := types.DocumentResult{Filename: filename}

	cp, err := rtf.CodepageByName(profile.Codepage)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	lines := rtf.Decode(data, cp)
	if len(lines) == 0 {
		result.Error = "no text content in document"
		return result
	}

	parser := manifest.NewParser(profile)
	result.Records, result.Pages = parser.ParseDocument(lines)
	return result
}

// ProcessFile reads and processes one manifest file.
func ProcessFile(path string, profile manifest.Profile) types.DocumentResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DocumentResult{
			Filename: filepath.Base(path),
			Error:    fmt.Sprintf("reading file: %v", err),
		}
	}
	return Process(data, filepath.Base(path), profile)
}

// Summary holds counts from a batch run.
type Summary struct {
	Converted int // documents that yielded at least one record
	Empty     int // documents that parsed but matched no stops
	Failed    int // documents that could not be processed
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.Converted + s.Empty + s.Failed
}

// HasFailures reports whether any document failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run processes a list of manifest files, printing per-file status to w and
// returning the per-document results alongside a summary. Documents are
// independent; a failure is counted and the batch continues.
func Run(paths []string, profile manifest.Profile, w io.Writer) ([]types.DocumentResult, Summary) {
	results := make([]types.DocumentResult, 0, len(paths))
	var summary Summary

	for _, path := range paths {
		res := ProcessFile(path, profile)
		results = append(results, res)

		switch {
		case res.Failed():
			fmt.Fprintf(w, "failed:    %s (%s)\n", res.Filename, res.Error)
			summary.Failed++
		case res.Count() == 0:
			fmt.Fprintf(w, "empty:     %s (no stops matched)\n", res.Filename)
			summary.Empty++
		default:
			fmt.Fprintf(w, "converted: %s (%d stops, %d pages)\n", res.Filename, res.Count(), res.Pages)
			summary.Converted++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d empty, %d failed (total: %d)\n",
		summary.Converted, summary.Empty, summary.Failed, summary.Total())
	return results, summary
}
