// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rutelister/internal/manifest"
	"github.com/pdiddy/rutelister/internal/rtf"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [manifest]",
	Short: "Show how a manifest decodes and parses",
	Long: `Inspect decodes one RTF manifest and prints what the parser sees:
page boundaries, per-page route metadata, and matched stop lines. Use it
when a manifest converts to fewer stops than expected, to find which line
the stop pattern or address resolver is missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("profile", "", "YAML layout profile (default: built-in Hasselager profile)")
	inspectCmd.Flags().Bool("lines", false, "print every decoded line with its line number")
	inspectCmd.Flags().Bool("records", false, "print the extracted stop records as YAML")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	profilePath, _ := cmd.Flags().GetString("profile")
	showLines, _ := cmd.Flags().GetBool("lines")
	showRecords, _ := cmd.Flags().GetBool("records")

	profile, err := manifest.LoadProfile(profilePath)
	if err != nil {
		return err
	}
	cp, err := rtf.CodepageByName(profile.Codepage)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	lines := rtf.Decode(data, cp)
	if len(lines) == 0 {
		return fmt.Errorf("no text content in document")
	}

	pages := manifest.SplitPages(lines)
	parser := manifest.NewParser(profile)

	fmt.Printf("%s: %d decoded lines, %d pages\n", filepath.Base(args[0]), len(lines), len(pages))

	lineNo := 1
	for i, page := range pages {
		meta := manifest.ExtractMeta(page)
		records := parser.ParsePage(page)

		fmt.Printf("\nPage %d: %d lines, %d stops\n", i+1, len(page), len(records))
		fmt.Printf("  route=%q port=%q start=%q end=%q settlement=%q\n",
			meta.RouteNumber, meta.PortNumber, meta.StartTime, meta.EndTime, meta.SettlementMinutes)

		for _, ln := range page {
			if stop, ok := manifest.MatchStop(ln); ok {
				fmt.Printf("  stop %s: %s (%s - %s)\n", stop.ID, stop.RawName, stop.Arrival, stop.Departure)
			}
			if showLines {
				fmt.Printf("  %4d | %s\n", lineNo, ln)
			}
			lineNo++
		}
	}

	if showRecords {
		records, _ := parser.ParseDocument(lines)
		out, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshaling records: %w", err)
		}
		fmt.Printf("\n%s", out)
	}
	return nil
}
