package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfbb/hamcode/internal/hamcode"
	"github.com/dfbb/hamcode/internal/render"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a matrix code from its text form",
	Long: `Decode reads a code in the '#'/'.' text form from a file, or from stdin
when no file is given, and prints the recovered text. Single flipped cells
are corrected silently; a chunk with two flipped cells aborts the decode.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg)

	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	g, err := render.Parse(in)
	if err != nil {
		return err
	}

	res, err := hamcode.DecodeGrid(g)
	if err != nil {
		recordHistory(cfg, "decode", "", "", 0, false)
		return err
	}
	recordHistory(cfg, "decode", "", res.Text, res.Corrected, true)

	if res.Corrected > 0 {
		fmt.Fprintf(os.Stderr, "corrected %d flipped cell(s)\n", res.Corrected)
	}
	if res.HexFallback {
		fmt.Fprintln(os.Stderr, "payload is not valid UTF-8, printing hex bytes")
	}
	fmt.Println(res.Text)
	return nil
}
