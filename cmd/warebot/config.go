// Config loading for the warebot CLI. Settings come from config.yaml
// in the config directory; a default file is written on first run.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/warebot/internal/robot"
	"github.com/mesh-intelligence/warebot/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyMode    = "mode"
	cfgKeyDataDir = "data_dir"
	cfgKeyRobotID = "robot_id"
	cfgKeySim     = "sim"

	defaultMode    = "auto"
	defaultRobotID = "ROBOT_001"
)

// defaultConfigYAML is the content written to config.yaml on first
// run. Every sim key is optional and falls back to the built-in
// tuning; durations use Go syntax ("500ms", "3s").
const defaultConfigYAML = `# Warebot configuration

# Automation mode: auto (retry faults automatically) or semi (ask).
mode: auto

# Robot identifier shown in status output and the journal.
robot_id: ROBOT_001

# Data directory for the operation journal
# (optional; overridable by --data-dir flag)
# data_dir:

# Simulation tuning. Uncomment to override the defaults.
# sim:
#   initial_battery: 100
#   charging_threshold: 20
#   obstacle_chance: 0.20
#   scan_failure_rate: 0.15
#   travel_time: 1s
#   scan_time: 500ms
`

// appConfig is the resolved configuration for one invocation.
type appConfig struct {
	mode    types.AutomationMode
	robotID string
	dataDir string
	tuning  robot.Tuning
}

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*appConfig, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyMode, defaultMode)
	v.SetDefault(cfgKeyRobotID, defaultRobotID)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	mode, err := types.ParseMode(v.GetString(cfgKeyMode))
	if err != nil {
		return nil, fmt.Errorf("config %s %q: %w", cfgKeyMode, v.GetString(cfgKeyMode), err)
	}

	tuning := robot.DefaultTuning()
	if sub := v.Sub(cfgKeySim); sub != nil {
		if err := sub.Unmarshal(&tuning); err != nil {
			return nil, fmt.Errorf("parse %s config: %w", cfgKeySim, err)
		}
	}

	return &appConfig{
		mode:    mode,
		robotID: v.GetString(cfgKeyRobotID),
		dataDir: v.GetString(cfgKeyDataDir),
		tuning:  tuning,
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// effectiveMode applies the --mode flag on top of the config value.
func effectiveMode() (types.AutomationMode, error) {
	if flagMode == "" {
		return cfg.mode, nil
	}
	return types.ParseMode(flagMode)
}
