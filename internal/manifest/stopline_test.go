// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"testing"

	"github.com/pdiddy/rutelister/pkg/types"
)

func TestMatchStop(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.StopLine
		ok   bool
	}{
		{
			name: "compact time range",
			line: "12345 Brugsen Centrum 7:00-21:00 1 2 3 07:15 07:25",
			want: types.StopLine{ID: "12345", RawName: "Brugsen Centrum", Arrival: "07:15", Departure: "07:25"},
			ok:   true,
		},
		{
			name: "spaced time range and two-digit hours",
			line: "54321 Superbrugsen Nord 07:00 - 21:00 15 08:40 08:55",
			want: types.StopLine{ID: "54321", RawName: "Superbrugsen Nord", Arrival: "08:40", Departure: "08:55"},
			ok:   true,
		},
		{
			name: "eight numeric columns",
			line: "11111 Kiosken 6:00-22:00 1 2 3 4 5 6 7 8 09:05 09:10",
			want: types.StopLine{ID: "11111", RawName: "Kiosken", Arrival: "09:05", Departure: "09:10"},
			ok:   true,
		},
		{
			name: "trailing text after departure is allowed",
			line: "22222 Bageren 8:00-16:00 4 10:00 10:05 extra",
			want: types.StopLine{ID: "22222", RawName: "Bageren", Arrival: "10:00", Departure: "10:05"},
			ok:   true,
		},
		{name: "four-digit id", line: "1234 Butik 7:00-21:00 1 07:15 07:25"},
		{name: "no numeric columns", line: "12345 Butik 7:00-21:00 07:15 07:25"},
		{name: "missing departure", line: "12345 Butik 7:00-21:00 1 2 07:15"},
		{name: "metadata line", line: "HOSTRUTE: 4711"},
		{name: "address line", line: "Hovedgaden 10"},
		{name: "id not at line start", line: "x 12345 Butik 7:00-21:00 1 07:15 07:25"},
		{name: "empty line", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchStop(tt.line)
			if ok != tt.ok {
				t.Fatalf("MatchStop(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MatchStop(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

// Matching is a pure function of line content: repeated evaluation returns
// identical results.
func TestMatchStopIdempotent(t *testing.T) {
	line := "12345 Brugsen Centrum 7:00-21:00 1 2 3 07:15 07:25"
	first, ok := MatchStop(line)
	if !ok {
		t.Fatal("expected match")
	}
	for i := 0; i < 5; i++ {
		got, ok := MatchStop(line)
		if !ok || got != first {
			t.Fatalf("evaluation %d: got %+v ok=%v, want %+v", i, got, ok, first)
		}
	}
}
