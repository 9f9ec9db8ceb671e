// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest extracts delivery-stop records from decoded route
// manifest text. The printed layout carries no structural markers beyond
// whitespace and footer text, so everything here works by line-order
// heuristics and fixed patterns. See docs/ARCHITECTURE § Manifest Parsing.
package manifest

import "regexp"

// footerPattern matches the "Side N af M" pagination footer that closes a page.
var footerPattern = regexp.MustCompile(`(?i)Side\s+\d+\s+af\s+\d+`)

// SplitPages partitions decoded lines into pages. A line matching the footer
// closes the current page (footer included); a trailing buffer with content
// after the last footer is still emitted, so manifests that were cut off
// before their final footer are tolerated.
func SplitPages(lines []string) [][]string {
	var pages [][]string
	var current []string
	for _, ln := range lines {
		current = append(current, ln)
		if footerPattern.MatchString(ln) {
			pages = append(pages, current)
			current = nil
		}
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}
