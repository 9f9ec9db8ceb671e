// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/rutelister/pkg/types"
)

func hours(v float64) *float64 { return &v }

func sampleRecords() []types.StopRecord {
	return []types.StopRecord{
		{
			StoreName: "Brugsen Centrum", Street: "Hovedgaden 10", PostalCode: "8000",
			City: "Aarhus C", Arrival: "07:15", RouteNumber: "4711", PortNumber: "12",
			StartTime: "06:30", EndTime: "13:45", SettlementHours: hours(6.5),
		},
		{
			StoreName: "Superbrugsen Nord", Street: "Strandvejen 2", PostalCode: "9000",
			City: "Aalborg", Arrival: "08:40", RouteNumber: "4711", PortNumber: "12",
			StartTime: "06:30", EndTime: "13:45", SettlementHours: hours(6.5),
		},
		{
			StoreName: "Kiosken", Street: "Nørregade 4", PostalCode: "7100",
			City: "Vejle", Arrival: "15:05", RouteNumber: "4712", PortNumber: "3",
			StartTime: "14:00", EndTime: "20:00",
		},
	}
}

func TestBuild(t *testing.T) {
	f, err := Build(sampleRecords(), "24-08-2026")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	read, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer read.Close()

	rows, err := read.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3 records", len(rows))
	}

	wantHeader := []string{
		"Kørselsdato", "Rutenummer", "Portnummer", "Butiksnavn", "Adresse",
		"Postnr", "By", "Ankomst", "Starttid", "Sluttid", "Afregningstid (timer)",
	}
	for c, want := range wantHeader {
		if rows[0][c] != want {
			t.Errorf("header[%d] = %q, want %q", c, rows[0][c], want)
		}
	}

	first := rows[1]
	if first[0] != "24-08-2026" {
		t.Errorf("run date = %q", first[0])
	}
	if first[1] != "4711" || first[3] != "Brugsen Centrum" || first[7] != "07:15" {
		t.Errorf("first row = %v", first)
	}
	if first[10] != "6.5" {
		t.Errorf("settlement cell = %q, want 6.5", first[10])
	}

	// Absent settlement leaves the cell empty.
	third := rows[3]
	if len(third) > 10 && third[10] != "" {
		t.Errorf("empty settlement rendered as %q", third[10])
	}
}

func TestRouteGroups(t *testing.T) {
	groups := routeGroups(sampleRecords())
	want := []group{{first: 2, last: 3}, {first: 4, last: 4}}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("groups[%d] = %+v, want %+v", i, groups[i], want[i])
		}
	}
}

func TestRouteGroupsNonContiguousStaySeparate(t *testing.T) {
	records := []types.StopRecord{
		{RouteNumber: "1"},
		{RouteNumber: "2"},
		{RouteNumber: "1"},
	}
	groups := routeGroups(records)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3: grouping is positional, not keyed", len(groups))
	}
}

func TestBuildEmptyRecords(t *testing.T) {
	f, err := Build(nil, "24-08-2026")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"rute_4711.rtf", "rute_4711_farvestruktur.xlsx"},
		{"rute_4711.RTF", "rute_4711_farvestruktur.xlsx"},
		{"noext", "noext_farvestruktur.xlsx"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{
		{Name: "a_farvestruktur.xlsx", Data: []byte("aaa")},
		{Name: "b_farvestruktur.xlsx", Data: []byte("bbb")},
	}
	if err := WriteZip(&buf, entries); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("got %d files, want 2", len(zr.File))
	}
	for i, want := range []string{"a_farvestruktur.xlsx", "b_farvestruktur.xlsx"} {
		if zr.File[i].Name != want {
			t.Errorf("file[%d] = %q, want %q", i, zr.File[i].Name, want)
		}
	}
}
