// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/rutelister/internal/manifest"
)

// sampleRTF is a minimal but complete manifest: RTF preamble, header block
// with all five labels (LÆSSEPORT spelled with an \'c6 hex escape), two
// stops with address lines, a depot return row, and a pagination footer.
const sampleRTF = `{\rtf1\ansi\deff0
\pard Hasselager FVT\par
HOSTRUTE: 4711 L\'c6SSEPORT: 12\par
STARTTID: 06:30 SLUTTID: 13:45 AFREGNINGSTID: 390\par
TUR START\par
12345 Brugsen Centrum 7:00-21:00 1 2 3 07:15 07:25\par
Hovedgaden 10\par
8000 Aarhus C\par
54321 Superbrugsen Nord 07:00 - 21:00 15 08:40 08:55\par
Strandvejen 2\par
9000 Aalborg\par
99999 Hasselager FVT 0:00-23:59 1 13:30 13:45\par
Side 1 af 1\par
}`

func TestProcess(t *testing.T) {
	res := Process([]byte(sampleRTF), "rute_4711.rtf", manifest.DefaultProfile())

	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Error)
	}
	if res.Filename != "rute_4711.rtf" {
		t.Errorf("Filename = %q", res.Filename)
	}
	if res.Pages != 1 {
		t.Errorf("Pages = %d, want 1", res.Pages)
	}
	if res.Count() != 2 {
		t.Fatalf("Count = %d, want 2 (depot row excluded)", res.Count())
	}

	first := res.Records[0]
	if first.StoreName != "Brugsen Centrum" || first.Street != "Hovedgaden 10" ||
		first.PostalCode != "8000" || first.City != "Aarhus C" {
		t.Errorf("first record = %+v", first)
	}
	if first.RouteNumber != "4711" || first.PortNumber != "12" {
		t.Errorf("first record metadata = %+v", first)
	}
	if first.SettlementHours == nil || *first.SettlementHours != 6.5 {
		t.Errorf("SettlementHours = %v", first.SettlementHours)
	}

	second := res.Records[1]
	if second.StoreName != "Superbrugsen Nord" || second.City != "Aalborg" {
		t.Errorf("second record = %+v", second)
	}
}

func TestProcessFailures(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		profile func() manifest.Profile
		wantErr string
	}{
		{
			name:    "empty document",
			data:    nil,
			profile: manifest.DefaultProfile,
			wantErr: "no text content",
		},
		{
			name:    "markup only",
			data:    []byte(`{\rtf1\ansi}`),
			profile: manifest.DefaultProfile,
			wantErr: "no text content",
		},
		{
			name: "unknown codepage",
			data: []byte("whatever"),
			profile: func() manifest.Profile {
				p := manifest.DefaultProfile()
				p.Codepage = "ebcdic"
				return p
			},
			wantErr: "unknown codepage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Process(tt.data, "x.rtf", tt.profile())
			if !res.Failed() {
				t.Fatal("expected failure")
			}
			if !strings.Contains(res.Error, tt.wantErr) {
				t.Errorf("Error = %q, want substring %q", res.Error, tt.wantErr)
			}
			if res.Count() != 0 {
				t.Errorf("failed document carries %d records", res.Count())
			}
		})
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	tmpDir := t.TempDir()

	good := filepath.Join(tmpDir, "good.rtf")
	if err := os.WriteFile(good, []byte(sampleRTF), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(tmpDir, "empty.rtf")
	if err := os.WriteFile(empty, []byte(`{\rtf1 just a header line\par}`), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(tmpDir, "missing.rtf")

	var log bytes.Buffer
	results, summary := Run([]string{good, empty, missing}, manifest.DefaultProfile(), &log)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if summary.Converted != 1 || summary.Empty != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Total() != 3 {
		t.Errorf("Total() = %d", summary.Total())
	}
	if !summary.HasFailures() {
		t.Error("HasFailures() = false")
	}

	out := log.String()
	for _, want := range []string{"converted: good.rtf", "empty:", "failed:", "Batch summary:"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}

	// The failing document does not contaminate the good one.
	if results[0].Count() != 2 {
		t.Errorf("good document Count = %d, want 2", results[0].Count())
	}
}
