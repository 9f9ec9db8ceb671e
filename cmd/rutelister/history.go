// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rutelister/internal/store"
	"github.com/pdiddy/rutelister/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("history-dir", ".rutelister", "directory of the run-history database")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := types.HistoryConfig{}
	cfg.Dir, _ = cmd.Flags().GetString("history-dir")
	cfg.MaxResults, _ = cmd.Flags().GetInt("limit")

	s, err := store.Open(cfg.Dir)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.Recent(context.Background(), cfg.MaxResults)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-20s %-28s %-10s %7s %6s  %s\n",
		"WHEN", "FILE", "STATUS", "RECORDS", "PAGES", "OUTPUT")
	for _, r := range runs {
		detail := r.Output
		if r.Status == "failed" {
			detail = r.Error
		}
		fmt.Printf("%-20s %-28s %-10s %7d %6d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Filename, r.Status, r.Records, r.Pages, detail)
	}
	return nil
}
