// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/rutelister/pkg/types"
)

// routeSuffix matches the printed route annotation sometimes appended to a
// store name: a single uppercase letter with optional digits, e.g. " A 2".
// Known trade-off: a legitimate trailing single-letter name token is
// stripped too.
var routeSuffix = regexp.MustCompile(`\s+[A-Z]\s*\d*$`)

// Assemble combines a matched stop line, its resolved address, and the
// page's metadata into one record. It returns false when the stop denotes
// the depot itself: such rows are dropped entirely, not emitted with empty
// fields.
func Assemble(stop types.StopLine, addr types.Address, meta types.RouteMeta, depotMarker string) (types.StopRecord, bool) {
	name := strings.TrimSpace(routeSuffix.ReplaceAllString(stop.RawName, ""))

	if containsDepot(depotMarker, name, addr.Street, addr.City) {
		return types.StopRecord{}, false
	}

	return types.StopRecord{
		StoreName:       name,
		Street:          addr.Street,
		PostalCode:      addr.PostalCode,
		City:            addr.City,
		Arrival:         stop.Arrival,
		RouteNumber:     meta.RouteNumber,
		PortNumber:      meta.PortNumber,
		StartTime:       meta.StartTime,
		EndTime:         meta.EndTime,
		SettlementHours: settlementHours(meta.SettlementMinutes),
	}, true
}

// containsDepot reports whether any of the given fields mention the depot,
// case-insensitively. An empty marker excludes nothing.
func containsDepot(marker string, fields ...string) bool {
	if marker == "" {
		return false
	}
	m := strings.ToLower(marker)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), m) {
			return true
		}
	}
	return false
}

// settlementHours converts the settlement minutes string to hours rounded
// to two decimals. An absent or non-numeric value yields nil, never an error.
func settlementHours(minutes string) *float64 {
	if minutes == "" {
		return nil
	}
	v, err := strconv.ParseFloat(minutes, 64)
	if err != nil {
		return nil
	}
	h := math.Round(v/60.0*100) / 100
	return &h
}
