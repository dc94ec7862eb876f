// Version command for the warebot CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/warebot/pkg/warebot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the warebot version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("warebot", warebot.Version)
	},
}
