// Demo command for the warebot CLI.
package main

import "github.com/spf13/cobra"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run one demonstration fulfillment cycle and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, cleanup, err := buildShell(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		sh.RunDemo()
		return nil
	},
}
