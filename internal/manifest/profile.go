// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Profile describes the layout quirks of one depot's printed manifests:
// which text marks the depot itself, which report chrome to skip during
// address lookahead, how far to look ahead, and the document codepage.
// Profiles round-trip through YAML so a new depot can be supported without
// a rebuild.
type Profile struct {
	// DepotMarker is the fixed text identifying the originating depot.
	// Records whose name, street, or city contain it are not deliveries
	// and are dropped.
	DepotMarker string `yaml:"depot_marker"`

	// NoiseTerms lists report chrome that must never be mistaken for a
	// street line: labeled metadata fields, section markers, the print
	// timestamp. Terms are matched case-insensitively as literal text.
	NoiseTerms []string `yaml:"noise_terms"`

	// Lookahead is the number of lines scanned after a stop line when
	// resolving its address.
	Lookahead int `yaml:"lookahead"`

	// Codepage names the single-byte encoding of the RTF bytes.
	Codepage string `yaml:"codepage"`
}

// DefaultProfile returns the profile for the standard Hasselager manifests.
func DefaultProfile() Profile {
	return Profile{
		DepotMarker: "Hasselager",
		NoiseTerms: []string{
			"Hasselager FVT",
			"TUR START",
			"TRIP",
			"PAUSE",
			"LÆSSEPORT",
			"HOSTRUTE",
			"VOGNNUMMER",
			"ÅBNE - LUKKE",
			"STARTTID",
			"HJEMKOMSTTID",
			"SLUTTID",
			"ROUTEDATE",
			"Udskrevet:",
		},
		Lookahead: 12,
		Codepage:  "latin-1",
	}
}

// LoadProfile reads a profile from a YAML file. An empty path returns the
// default profile. Missing fields fall back to their defaults so a profile
// file only needs to state what differs.
func LoadProfile(path string) (Profile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Lookahead <= 0 {
		p.Lookahead = DefaultProfile().Lookahead
	}
	return p, nil
}

// Write saves the profile to a YAML file.
func (p Profile) Write(path string) error {
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// noisePattern compiles the chrome matcher: the profile's literal terms plus
// the pagination footer, case-insensitive.
func (p Profile) noisePattern() *regexp.Regexp {
	terms := make([]string, 0, len(p.NoiseTerms)+1)
	for _, t := range p.NoiseTerms {
		if t != "" {
			terms = append(terms, regexp.QuoteMeta(t))
		}
	}
	terms = append(terms, `Side\s+\d+\s+af\s+\d+`)
	return regexp.MustCompile(`(?i)(` + strings.Join(terms, "|") + `)`)
}
