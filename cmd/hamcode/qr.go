package main

import (
	"os"

	qrterminal "github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr <text>",
	Short: "Print the same text as a standard QR code for comparison",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		qrterminal.GenerateHalfBlock(args[0], qrterminal.L, os.Stdout)
	},
}
