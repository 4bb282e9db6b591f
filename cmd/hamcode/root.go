package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dfbb/hamcode/internal/config"
	"github.com/dfbb/hamcode/internal/hamcode"
	"github.com/dfbb/hamcode/internal/history"
	"github.com/dfbb/hamcode/internal/render"
)

var rootCmd = &cobra.Command{
	Use:           "hamcode",
	Short:         "Encode and decode 20x20 Hamming-protected matrix codes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var flagConfig string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.hamcode/config.yaml)")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(flipCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	Execute()
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, _ := os.UserHomeDir()
	return home + "/.hamcode/config.yaml"
}

// loadConfig reads the config file, writing one with all defaults spelled out
// if none exists yet.
func loadConfig() *config.Config {
	path := configPath()
	cfg, err := config.Load(path)
	if err == nil {
		return cfg
	}
	if !os.IsNotExist(err) {
		slog.Warn("config load failed, using defaults", "path", path, "err", err)
		return config.Defaults()
	}
	cfg = config.Defaults()
	if err := config.Save(path, cfg); err != nil {
		slog.Warn("could not write default config", "path", path, "err", err)
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		lvl = slog.LevelWarn
	}
	w := io.Writer(os.Stderr)
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); err == nil {
			w = f
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

// renderGrid picks the configured grid form, falling back to half-blocks only
// when stdout is a terminal.
func renderGrid(cfg *config.Config, forceASCII bool, g hamcode.Grid) string {
	style := cfg.Render.Style
	if forceASCII {
		style = "ascii"
	}
	if style == "auto" {
		style = "ascii"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			style = "blocks"
		}
	}
	if style == "blocks" {
		return render.Blocks(g)
	}
	return render.ASCII(g)
}

func recordHistory(cfg *config.Config, op, input, output string, corrected int, ok bool) {
	if cfg.HistoryDB == "" {
		return
	}
	h, err := history.New(cfg.HistoryDB)
	if err != nil {
		slog.Warn("history disabled", "err", err)
		return
	}
	defer h.Close()
	if err := h.Record(op, input, output, corrected, ok); err != nil {
		slog.Warn("history record failed", "err", err)
	}
}
