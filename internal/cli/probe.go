package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minewatch-io/minewatch/internal/config"
	"github.com/minewatch-io/minewatch/internal/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "One-shot UDP liveness check against the game server",
	Long: `Probe sends a single unconnected ping to SERVER_IP:SERVER_PORT and
prints ONLINE or OFFLINE. The command always exits 0 — a transient check must
not surface as a pipeline error.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireProbeTarget(); err != nil {
		return err
	}

	if probe.Check(cfg.ProbeHost, cfg.ProbePort, probe.DefaultTimeout) {
		fmt.Println("ONLINE")
	} else {
		fmt.Println("OFFLINE")
	}
	return nil
}
