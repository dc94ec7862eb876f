// Check command for the warebot CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/warebot/internal/selftest"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the built-in self checks and exit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !selftest.Run(cmd.OutOrStdout()) {
			os.Exit(exitSysError)
		}
	},
}
