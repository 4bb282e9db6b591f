package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dfbb/hamcode/internal/hamcode"
)

var checkCmd = &cobra.Command{
	Use:   "check <text>...",
	Short: "Check whether text fits the payload budget",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ok, over := 0, 0
	for _, text := range args {
		n := len(text)
		switch {
		case n > hamcode.MaxPayload:
			fmt.Printf("  ✗ %-28q %2d/%d bytes (over by %d)\n", text, n, hamcode.MaxPayload, n-hamcode.MaxPayload)
			over++
		case !utf8.ValidString(text):
			fmt.Printf("  ✗ %-28q not valid UTF-8\n", text)
			over++
		default:
			fmt.Printf("  ✓ %-28q %2d/%d bytes\n", text, n, hamcode.MaxPayload)
			ok++
		}
	}
	fmt.Printf("\n%d ok, %d rejected\n", ok, over)
	if over > 0 {
		return fmt.Errorf("%d input(s) rejected", over)
	}
	return nil
}
