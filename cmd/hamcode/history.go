package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfbb/hamcode/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent encode/decode operations",
	RunE:  runHistory,
}

var flagHistoryLimit int

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.HistoryDB == "" {
		return fmt.Errorf("history is not configured; set history_db in %s", configPath())
	}

	h, err := history.New(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer h.Close()

	entries, err := h.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No recorded operations.")
		return nil
	}
	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "failed"
		}
		text := e.Output
		if e.Op == "encode" {
			text = e.Input
		}
		fmt.Printf("  %s  %-6s  %-6s  corrected=%d  %q\n", e.TS, e.Op, status, e.Corrected, text)
	}
	return nil
}
