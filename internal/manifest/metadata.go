// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"regexp"

	"github.com/pdiddy/rutelister/pkg/types"
)

// Label patterns for the five route-level fields. The labels appear in the
// page header block, but nothing guarantees their position, so every line
// is tried against every pattern.
var (
	routePattern      = regexp.MustCompile(`HOSTRUTE:\s*(\d+)`)
	portPattern       = regexp.MustCompile(`LÆSSEPORT:\s*(\d+)`)
	startPattern      = regexp.MustCompile(`STARTTID:\s*([0-2]?\d:\d{2})`)
	endPattern        = regexp.MustCompile(`SLUTTID:\s*([0-2]?\d:\d{2})`)
	settlementPattern = regexp.MustCompile(`AFREGNINGSTID:\s*(\d+)`)
)

// ExtractMeta folds over a page's lines and returns the route metadata in
// effect at the end of the page. A matching line overwrites the field; a
// non-matching line leaves the previously found value in place, so the last
// occurrence of a label wins. The fold is a pure function of the page:
// nothing carries across page boundaries.
func ExtractMeta(page []string) types.RouteMeta {
	var meta types.RouteMeta
	for _, ln := range page {
		if m := routePattern.FindStringSubmatch(ln); m != nil {
			meta.RouteNumber = m[1]
		}
		if m := portPattern.FindStringSubmatch(ln); m != nil {
			meta.PortNumber = m[1]
		}
		if m := startPattern.FindStringSubmatch(ln); m != nil {
			meta.StartTime = m[1]
		}
		if m := endPattern.FindStringSubmatch(ln); m != nil {
			meta.EndTime = m[1]
		}
		if m := settlementPattern.FindStringSubmatch(ln); m != nil {
			meta.SettlementMinutes = m[1]
		}
	}
	return meta
}
