// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rutelister/internal/manifest"
	"github.com/pdiddy/rutelister/internal/pipeline"
	"github.com/pdiddy/rutelister/internal/store"
	"github.com/pdiddy/rutelister/internal/workbook"
	"github.com/pdiddy/rutelister/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [manifests...]",
	Short: "Convert RTF route manifests to color-coded Excel workbooks",
	Long: `Convert decodes each RTF manifest, extracts its delivery stops with
route metadata and addresses, and writes one styled workbook per manifest.
Rows are grouped visually by route number in manifest order.

A failing manifest is reported and skipped; the rest of the batch is
unaffected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("date", "", "run date stamped into every row, DD-MM-YYYY (default: today)")
	convertCmd.Flags().String("out-dir", "manifests/out", "directory for generated workbooks")
	convertCmd.Flags().String("profile", "", "YAML layout profile (default: built-in Hasselager profile)")
	convertCmd.Flags().Bool("combined", false, "also write a single workbook containing all manifests")
	convertCmd.Flags().Bool("bundle", false, "also write a zip archive of the generated workbooks")
	convertCmd.Flags().String("history-dir", ".rutelister", "directory for the run-history database (empty disables history)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	profile, err := manifest.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	results, summary := pipeline.Run(args, profile, os.Stdout)

	historyDir, _ := cmd.Flags().GetString("history-dir")
	hist := openHistory(historyDir)
	if hist != nil {
		defer hist.Close()
	}

	var bundleEntries []workbook.Entry
	var combined []types.StopRecord

	for _, res := range results {
		run := store.Run{
			Filename: res.Filename,
			Records:  res.Count(),
			Pages:    res.Pages,
			RunDate:  cfg.RunDate,
			Status:   "converted",
			Error:    res.Error,
		}

		switch {
		case res.Failed():
			run.Status = "failed"
		case res.Count() == 0:
			run.Status = "empty"
		default:
			name := workbook.OutputName(res.Filename)
			path := filepath.Join(cfg.OutDir, name)
			if err := workbook.Write(res.Records, cfg.RunDate, path); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "wrote:     %s\n", path)
			run.Output = name

			combined = append(combined, res.Records...)
			if cfg.Bundle {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("rereading workbook for bundle: %w", err)
				}
				bundleEntries = append(bundleEntries, workbook.Entry{Name: name, Data: data})
			}
		}

		recordHistory(hist, run)
	}

	if cfg.Combined && len(combined) > 0 {
		path := filepath.Join(cfg.OutDir, workbook.CombinedName)
		if err := workbook.Write(combined, cfg.RunDate, path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote:     %s\n", path)
	}

	if cfg.Bundle && len(bundleEntries) > 0 {
		path := filepath.Join(cfg.OutDir, workbook.BundleName)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating bundle: %w", err)
		}
		if err := workbook.WriteZip(f, bundleEntries); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing bundle: %w", err)
		}
		fmt.Fprintf(os.Stdout, "wrote:     %s\n", path)
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d manifest(s) failed", summary.Failed)
	}
	return nil
}

func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = "manifests/out"
	}
	runDate, _ := cmd.Flags().GetString("date")
	if runDate == "" {
		runDate = time.Now().Format("02-01-2006")
	}
	profilePath, _ := cmd.Flags().GetString("profile")
	combined, _ := cmd.Flags().GetBool("combined")
	bundle, _ := cmd.Flags().GetBool("bundle")

	return types.ConvertConfig{
		OutDir:      outDir,
		RunDate:     runDate,
		ProfilePath: profilePath,
		Combined:    combined,
		Bundle:      bundle,
	}
}

// openHistory opens the run-history store. History is best effort: a
// failure to open it warns and disables recording for this invocation.
func openHistory(dir string) *store.Store {
	if dir == "" {
		return nil
	}
	s, err := store.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history disabled: %v\n", err)
		return nil
	}
	return s
}

func recordHistory(s *store.Store, run store.Run) {
	if s == nil {
		return
	}
	if err := s.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
