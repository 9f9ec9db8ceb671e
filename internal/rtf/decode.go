// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rtf recovers plain text from RTF markup. Only the text-bearing
// escape grammar is interpreted; formatting, fonts, and embedded objects
// are discarded. See docs/ARCHITECTURE § Decoder.
package rtf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Codepage is a single-byte character mapping used both for the raw
// document bytes and for \'XX hex escapes. Every byte value decodes;
// positions the codepage leaves undefined are dropped rather than rejected.
type Codepage struct {
	name string
	cm   *charmap.Charmap
}

// Name returns the codepage identifier (e.g. "latin-1").
func (c Codepage) Name() string { return c.name }

// codepages maps accepted names to their charmap. The printed manifests
// declare latin-1; windows-1252 covers exports from newer report writers.
var codepages = map[string]*charmap.Charmap{
	"latin-1":      charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// CodepageByName resolves a codepage identifier. Unknown names are the one
// configuration error the decoder can surface.
func CodepageByName(name string) (Codepage, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "latin-1"
	}
	cm, ok := codepages[key]
	if !ok {
		return Codepage{}, fmt.Errorf("unknown codepage %q", name)
	}
	return Codepage{name: key, cm: cm}, nil
}

// decodeByte maps one byte through the codepage. ok is false for positions
// the codepage leaves undefined.
func (c Codepage) decodeByte(b byte) (rune, bool) {
	r := c.cm.DecodeByte(b)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// Substitution order matters: an escape consumed by an earlier step must not
// be re-interpreted by a later one, so \uN and \'XX go first and the generic
// control-word strip goes last.
var (
	uniEscape  = regexp.MustCompile(`\\u(-?\d+)\??`)
	hexEscape  = regexp.MustCompile(`\\'([0-9a-fA-F]{2})`)
	lineBreak  = regexp.MustCompile(`\\(?:pard?|line|cell|row)`)
	tabWord    = regexp.MustCompile(`\\tab`)
	ctrlWord   = regexp.MustCompile(`\\[a-zA-Z]+\d* ?`)
	hspaceRun  = regexp.MustCompile(`[ \t]+`)
	leadSpace  = regexp.MustCompile(`\n[ \t]+`)
	trailSpace = regexp.MustCompile(`[ \t]+\n`)
	blankRun   = regexp.MustCompile(`\n{2,}`)
)

// Decode turns raw RTF bytes into trimmed, non-empty text lines in document
// order. It never fails: malformed escapes degrade to a space or vanish, and
// unmappable bytes are dropped.
func Decode(data []byte, cp Codepage) []string {
	var raw strings.Builder
	raw.Grow(len(data))
	for _, b := range data {
		if r, ok := cp.decodeByte(b); ok {
			raw.WriteRune(r)
		}
	}

	text := uniEscape.ReplaceAllStringFunc(raw.String(), func(m string) string {
		return decodeUnicodeEscape(m)
	})

	text = hexEscape.ReplaceAllStringFunc(text, func(m string) string {
		return decodeHexEscape(m, cp)
	})

	text = lineBreak.ReplaceAllString(text, "\n")
	text = tabWord.ReplaceAllString(text, "    ")
	text = ctrlWord.ReplaceAllString(text, " ")
	text = strings.NewReplacer("{", " ", "}", " ").Replace(text)

	text = hspaceRun.ReplaceAllString(text, " ")
	text = leadSpace.ReplaceAllString(text, "\n")
	text = trailSpace.ReplaceAllString(text, "\n")
	text = blankRun.ReplaceAllString(text, "\n")

	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// decodeUnicodeEscape resolves a \uN escape. N is a signed decimal; negative
// values wrap at 16 bits, matching how report writers emit codepoints above
// 0x7FFF. Codepoints that cannot be rendered become a single space.
func decodeUnicodeEscape(m string) string {
	sub := uniEscape.FindStringSubmatch(m)
	n, err := strconv.Atoi(sub[1])
	if err != nil {
		return " "
	}
	if n < 0 {
		n += 65536
	}
	r := rune(n)
	if n < 0 || !utf8.ValidRune(r) {
		return " "
	}
	return string(r)
}

// decodeHexEscape resolves a \'XX escape through the codepage. A byte the
// codepage cannot map makes the escape vanish.
func decodeHexEscape(m string, cp Codepage) string {
	sub := hexEscape.FindStringSubmatch(m)
	v, err := strconv.ParseUint(sub[1], 16, 8)
	if err != nil {
		return ""
	}
	r, ok := cp.decodeByte(byte(v))
	if !ok {
		return ""
	}
	return string(r)
}
