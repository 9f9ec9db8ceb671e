// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"regexp"
	"strings"

	"github.com/pdiddy/rutelister/pkg/types"
)

// stopPattern matches one delivery-stop line, anchored at line start:
// a five-digit store id, the store name (non-greedy, up to the opening-hours
// range), an opening-hours range, one to eight numeric columns whose widths
// vary between manifests, then the arrival and departure times. The numeric
// columns are consumed but not captured.
var stopPattern = regexp.MustCompile(
	`^(?P<id>\d{5})\s+(?P<name>.+?)\s+` +
		`(?:\d{1,2}:\d{2})\s*-\s*(?:\d{1,2}:\d{2})` +
		`(?:\s+\d+){1,8}\s+` +
		`(?P<arrival>\d{1,2}:\d{2})\s+(?P<departure>\d{1,2}:\d{2})\b`,
)

// MatchStop reports whether line is a delivery stop and, if so, its captured
// fields. It is a pure function of the line content; lines that do not match
// the full shape are not stops, though they may still serve as address
// lookahead text for an earlier stop.
func MatchStop(line string) (types.StopLine, bool) {
	m := stopPattern.FindStringSubmatch(line)
	if m == nil {
		return types.StopLine{}, false
	}
	stop := types.StopLine{}
	for i, name := range stopPattern.SubexpNames() {
		switch name {
		case "id":
			stop.ID = m[i]
		case "name":
			stop.RawName = strings.TrimSpace(m[i])
		case "arrival":
			stop.Arrival = m[i]
		case "departure":
			stop.Departure = m[i]
		}
	}
	return stop, true
}
