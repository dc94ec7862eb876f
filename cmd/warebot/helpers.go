// Shared system assembly for the warebot CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/warebot/internal/journal"
	"github.com/mesh-intelligence/warebot/internal/packing"
	"github.com/mesh-intelligence/warebot/internal/pipeline"
	"github.com/mesh-intelligence/warebot/internal/shell"
	"github.com/mesh-intelligence/warebot/internal/warehouse"
)

const stationID = "PACK_STATION_1"

// buildShell assembles the store, pipeline, packing station, journal,
// and robot behind one interactive shell. The caller must call the
// returned cleanup function when done.
func buildShell(cmd *cobra.Command) (*shell.Shell, func(), error) {
	mode, err := effectiveMode()
	if err != nil {
		return nil, nil, fmt.Errorf("--mode: %w", err)
	}

	store := warehouse.NewStore()
	if err := shell.SeedDemoInventory(store); err != nil {
		return nil, nil, fmt.Errorf("seed inventory: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	jnl, err := journal.Open(dataDir)
	if err != nil {
		// The journal is a convenience; the simulation still works
		// without persistent history.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: journal unavailable: %v\n", err)
		jnl = nil
	}

	sh := shell.New(shell.Config{
		Store:    store,
		Pipeline: pipeline.New(store),
		Station:  packing.NewStation(stationID),
		Journal:  jnl,
		RobotID:  cfg.robotID,
		Mode:     mode,
		Tuning:   cfg.tuning,
		In:       os.Stdin,
		Out:      cmd.OutOrStdout(),
	})

	cleanup := func() {
		if jnl != nil {
			jnl.Close()
		}
	}
	return sh, cleanup, nil
}
