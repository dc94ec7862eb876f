// Shell command for the warebot CLI.
package main

import "github.com/spf13/cobra"

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive warehouse shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

// runShell starts the REPL. It backs both "warebot" and
// "warebot shell".
func runShell(cmd *cobra.Command) error {
	sh, cleanup, err := buildShell(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	return sh.Run()
}
