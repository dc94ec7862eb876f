// Root command for the warebot CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/warebot/internal/paths"
	"github.com/mesh-intelligence/warebot/pkg/warebot"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagMode      string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// cfg is the loaded configuration. Set by PersistentPreRunE.
var cfg *appConfig

var rootCmd = &cobra.Command{
	Use:     "warebot",
	Short:   "Warebot is a warehouse robot fulfillment simulator",
	Version: warebot.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.dataDir
		return nil
	},
	// Bare "warebot" opens the interactive shell.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.warebot-db)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "automation mode: auto or semi (default: from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(checkCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir >
// WAREBOT_DATA_DIR env > default $(CWD)/.warebot-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > WAREBOT_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
