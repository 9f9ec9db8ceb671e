// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"regexp"
	"strings"

	"github.com/pdiddy/rutelister/pkg/types"
)

// The manifest layout places a stop's address one to several lines below the
// stop line, with unrelated chrome lines in between and no fixed offset.
// A bounded forward window plus a noise-skip heuristic is the cheapest model
// that tolerates this without a full page grammar.
var (
	// bareFourDigits flags a line carrying a 4-digit token: that is a
	// postal-code line, never a street line.
	bareFourDigits = regexp.MustCompile(`\b\d{4}\b`)

	// postalCity splits "8000 Aarhus C" into postal code and city.
	postalCity = regexp.MustCompile(`(\d{4})\s+(.+)$`)

	// inlineAddress splits a single "street 8000 city" line, used only as
	// a fallback when no street-only line survived the window.
	inlineAddress = regexp.MustCompile(`(.+?)\s+(\d{4})\s+(.+)$`)
)

// Resolver recovers stop addresses from the lines following a stop line.
// It is built once per profile and safe for reuse across pages.
type Resolver struct {
	noise     *regexp.Regexp
	lookahead int
}

// NewResolver builds a Resolver from a layout profile.
func NewResolver(p Profile) *Resolver {
	return &Resolver{
		noise:     p.noisePattern(),
		lookahead: p.Lookahead,
	}
}

// Resolve scans the window of lines after page[stopIdx] and returns whatever
// address parts it can recover. Lines past the page end shrink the window.
// An empty result is not an error: the record is still emitted upstream with
// empty address fields.
func (r *Resolver) Resolve(page []string, stopIdx int) types.Address {
	var window []string
	for k := stopIdx + 1; k <= stopIdx+r.lookahead && k < len(page); k++ {
		window = append(window, page[k])
	}

	var addr types.Address

	// Street: first line that is neither chrome nor a postal-code line.
	for _, s := range window {
		if s == "" || r.noise.MatchString(s) {
			continue
		}
		if bareFourDigits.MatchString(s) {
			continue
		}
		addr.Street = strings.TrimSpace(s)
		break
	}

	// Postal code and city: independent pass over the same window.
	for _, s := range window {
		if m := postalCity.FindStringSubmatch(s); m != nil {
			addr.PostalCode = m[1]
			addr.City = strings.TrimSpace(m[2])
			break
		}
	}

	// Fallback: street, postal code, and city printed on a single line.
	if addr.Street == "" {
		for _, s := range window {
			m := inlineAddress.FindStringSubmatch(s)
			if m != nil && !r.noise.MatchString(s) {
				addr.Street = strings.TrimSpace(m[1])
				addr.PostalCode = m[2]
				addr.City = strings.TrimSpace(m[3])
				break
			}
		}
	}

	return addr
}
