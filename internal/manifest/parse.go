// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"github.com/pdiddy/rutelister/pkg/types"
)

// Parser extracts stop records from decoded manifest lines according to one
// layout profile. It holds no per-document state and may be reused.
type Parser struct {
	profile  Profile
	resolver *Resolver
}

// NewParser builds a Parser for the given profile.
func NewParser(p Profile) *Parser {
	return &Parser{
		profile:  p,
		resolver: NewResolver(p),
	}
}

// Profile returns the layout profile the parser was built with.
func (p *Parser) Profile() Profile {
	return p.profile
}

// ParsePage extracts the stop records of a single page, in line order.
// The page's metadata is computed once and applied to every stop on it.
func (p *Parser) ParsePage(page []string) []types.StopRecord {
	meta := ExtractMeta(page)

	var records []types.StopRecord
	for i, ln := range page {
		stop, ok := MatchStop(ln)
		if !ok {
			continue
		}
		addr := p.resolver.Resolve(page, i)
		rec, keep := Assemble(stop, addr, meta, p.profile.DepotMarker)
		if keep {
			records = append(records, rec)
		}
	}
	return records
}

// ParseDocument splits decoded lines into pages and concatenates each page's
// records in page order. Because pages and stop lines are processed strictly
// in source order and metadata is stable within a page, all records sharing
// a route number come out contiguous. Returns the records and the page count.
func (p *Parser) ParseDocument(lines []string) ([]types.StopRecord, int) {
	pages := SplitPages(lines)

	var records []types.StopRecord
	for _, page := range pages {
		records = append(records, p.ParsePage(page)...)
	}
	return records, len(pages)
}
