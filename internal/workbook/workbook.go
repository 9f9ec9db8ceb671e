// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook renders stop records into the color-coded spreadsheet the
// logistics staff work from. Rows are grouped visually by contiguous equal
// route numbers in the order given; the package never sorts, it relies on
// the pipeline emitting route numbers contiguously.
// See docs/ARCHITECTURE § Workbook Output.
package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/rutelister/pkg/types"
)

const sheetName = "Ruter"

// columns is the fixed output column set, in order. The run date comes from
// the operator, everything else from the records.
var columns = []string{
	"Kørselsdato",
	"Rutenummer",
	"Portnummer",
	"Butiksnavn",
	"Adresse",
	"Postnr",
	"By",
	"Ankomst",
	"Starttid",
	"Sluttid",
	"Afregningstid (timer)",
}

// Column fill colors, keyed by header.
var fillColors = map[string]string{
	"Kørselsdato":           "FFE0B2",
	"Butiksnavn":            "FFF9C4",
	"Adresse":               "FFF9C4",
	"Postnr":                "FFF9C4",
	"By":                    "FFF9C4",
	"Ankomst":               "BBDEFB",
	"Rutenummer":            "C8E6C9",
	"Portnummer":            "E1BEE7",
	"Starttid":              "ECEFF1",
	"Sluttid":               "ECEFF1",
	"Afregningstid (timer)": "ECEFF1",
}

// borderWeight selects one of the two border styles used around route groups.
type borderWeight int

const (
	borderNone borderWeight = iota
	borderThin
	borderMedium
)

// styleKey identifies one distinct cell style; styles are cached because
// excelize allocates a new style id per NewStyle call.
type styleKey struct {
	fill                     string
	bold                     bool
	center                   bool
	top, bottom, left, right borderWeight
}

type builder struct {
	f      *excelize.File
	styles map[styleKey]int
}

func (b *builder) style(k styleKey) (int, error) {
	if id, ok := b.styles[k]; ok {
		return id, nil
	}
	s := &excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{k.fill}},
	}
	if k.bold {
		s.Font = &excelize.Font{Bold: true}
	}
	if k.center {
		s.Alignment = &excelize.Alignment{Horizontal: "center"}
	}
	for _, side := range []struct {
		name   string
		weight borderWeight
	}{
		{"top", k.top}, {"bottom", k.bottom}, {"left", k.left}, {"right", k.right},
	} {
		switch side.weight {
		case borderThin:
			s.Border = append(s.Border, excelize.Border{Type: side.name, Color: "AAAAAA", Style: 1})
		case borderMedium:
			s.Border = append(s.Border, excelize.Border{Type: side.name, Color: "000000", Style: 2})
		}
	}
	id, err := b.f.NewStyle(s)
	if err != nil {
		return 0, fmt.Errorf("creating style: %w", err)
	}
	b.styles[k] = id
	return id, nil
}

// group is a run of consecutive rows sharing a route number.
type group struct {
	first, last int // 1-based worksheet rows
}

// routeGroups finds the contiguous route-number runs of the record list.
// Worksheet rows start at 2 (row 1 is the header).
func routeGroups(records []types.StopRecord) []group {
	var groups []group
	for i, rec := range records {
		row := i + 2
		if i == 0 || rec.RouteNumber != records[i-1].RouteNumber {
			groups = append(groups, group{first: row, last: row})
			continue
		}
		groups[len(groups)-1].last = row
	}
	return groups
}

// cellValues returns the row values for one record in column order.
// The settlement column is nil when the page carried no numeric value,
// which leaves the cell empty.
func cellValues(rec types.StopRecord, runDate string) []any {
	var settlement any
	if rec.SettlementHours != nil {
		settlement = *rec.SettlementHours
	}
	return []any{
		runDate,
		rec.RouteNumber,
		rec.PortNumber,
		rec.StoreName,
		rec.Street,
		rec.PostalCode,
		rec.City,
		rec.Arrival,
		rec.StartTime,
		rec.EndTime,
		settlement,
	}
}

// Build renders the records into a styled workbook: colored columns, bold
// header, bold first row of every route group, a medium border around each
// group with thin separators inside, frozen header row, and fitted column
// widths.
func Build(records []types.StopRecord, runDate string) (*excelize.File, error) {
	b := &builder{f: excelize.NewFile(), styles: make(map[styleKey]int)}
	if err := b.f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	widths := make([]int, len(columns))

	// Header row.
	for c, name := range columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, err
		}
		if err := b.f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
		id, err := b.style(styleKey{fill: fillColors[name], bold: true, center: true})
		if err != nil {
			return nil, err
		}
		if err := b.f.SetCellStyle(sheetName, cell, cell, id); err != nil {
			return nil, err
		}
		widths[c] = len(name)
	}

	groups := routeGroups(records)
	groupOf := make(map[int]group, len(records))
	for _, g := range groups {
		for r := g.first; r <= g.last; r++ {
			groupOf[r] = g
		}
	}

	for i, rec := range records {
		row := i + 2
		g := groupOf[row]
		values := cellValues(rec, runDate)

		for c, name := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return nil, err
			}
			if values[c] != nil {
				if err := b.f.SetCellValue(sheetName, cell, values[c]); err != nil {
					return nil, fmt.Errorf("writing row %d: %w", row, err)
				}
			}

			k := styleKey{
				fill:   fillColors[name],
				bold:   row == g.first,
				top:    weightFor(row == g.first),
				bottom: weightFor(row == g.last),
				left:   weightFor(c == 0),
				right:  weightFor(c == len(columns)-1),
			}
			id, err := b.style(k)
			if err != nil {
				return nil, err
			}
			if err := b.f.SetCellStyle(sheetName, cell, cell, id); err != nil {
				return nil, err
			}

			if n := len(fmt.Sprint(values[c])); values[c] != nil && n > widths[c] {
				widths[c] = n
			}
		}
	}

	if err := b.f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freezing header: %w", err)
	}

	for c := range columns {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		w := float64(widths[c]) + 2
		if w < 12 {
			w = 12
		}
		if w > 60 {
			w = 60
		}
		if err := b.f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, err
		}
	}

	return b.f, nil
}

// weightFor maps a group-edge predicate to its border weight.
func weightFor(edge bool) borderWeight {
	if edge {
		return borderMedium
	}
	return borderThin
}

// Write renders the records and saves the workbook at path.
func Write(records []types.StopRecord, runDate, path string) error {
	f, err := Build(records, runDate)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// OutputName derives the workbook filename from a manifest filename,
// matching the naming the staff already know: "<stem>_farvestruktur.xlsx".
func OutputName(manifestName string) string {
	stem := strings.TrimSuffix(manifestName, filepath.Ext(manifestName))
	return stem + "_farvestruktur.xlsx"
}

// CombinedName is the filename of the workbook holding all documents of a run.
const CombinedName = "rutelister_samlet.xlsx"

// BundleName is the filename of the zip archive of a multi-document run.
const BundleName = "rutelister_excel.zip"
