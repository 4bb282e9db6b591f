package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfbb/hamcode/internal/hamcode"
	"github.com/dfbb/hamcode/internal/render"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a matrix code",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagSeed  int64
	flagOut   string
	flagPNG   string
	flagScale int
	flagASCII bool
)

func init() {
	encodeCmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed for filler bits (0 = time-based)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "write the text form to a file instead of stdout")
	encodeCmd.Flags().StringVar(&flagPNG, "png", "", "also write a PNG image to this path")
	encodeCmd.Flags().IntVar(&flagScale, "scale", 0, "PNG pixels per cell (default from config)")
	encodeCmd.Flags().BoolVar(&flagASCII, "ascii", false, "print the '#'/'.' form even on a terminal")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg)

	src := hamcode.NewRandSource(time.Now().UnixNano())
	if flagSeed != 0 {
		src = hamcode.NewRandSource(flagSeed)
	}

	g, err := hamcode.EncodeText(args[0], src)
	recordHistory(cfg, "encode", args[0], "", 0, err == nil)
	if err != nil {
		return err
	}

	if flagPNG != "" {
		scale := flagScale
		if scale == 0 {
			scale = cfg.Render.Scale
		}
		if err := writePNGFile(flagPNG, g, scale); err != nil {
			return err
		}
	}

	if flagOut != "" {
		return os.WriteFile(flagOut, []byte(render.ASCII(g)), 0644)
	}
	fmt.Print(renderGrid(cfg, flagASCII, g))
	return nil
}

func writePNGFile(path string, g hamcode.Grid, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render.WritePNG(f, g, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
