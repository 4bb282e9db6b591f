package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dfbb/hamcode/internal/history"
	"github.com/dfbb/hamcode/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the codec over a WebSocket bridge",
	RunE:  runServe,
}

var flagAddr string

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg)

	addr := cfg.Serve.Addr
	if flagAddr != "" {
		addr = flagAddr
	}

	var hist *history.History
	if cfg.HistoryDB != "" {
		h, err := history.New(cfg.HistoryDB)
		if err != nil {
			slog.Warn("history disabled", "err", err)
		} else {
			hist = h
			defer h.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("hamcode serving", "addr", addr)
	err := server.New(addr, hist).Run(ctx)
	slog.Info("hamcode stopped")
	return err
}
