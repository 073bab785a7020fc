package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/minewatch-io/minewatch/internal/archive"
	"github.com/minewatch-io/minewatch/internal/browser"
	"github.com/minewatch-io/minewatch/internal/config"
	"github.com/minewatch-io/minewatch/internal/lifecycle"
	"github.com/minewatch-io/minewatch/internal/status"
)

var runHeadless bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one keep-alive cycle against the hosting panel",
	Long: `Run authenticates against the panel, drives the server to online,
and archives the connection-time report captured before the restart.

Credentials and archive endpoints come from the environment (or a .env file);
timing and the player symbol table come from ~/.minewatch/settings.yaml.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runHeadless, "headless", true, "run the browser headless")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	runID := uuid.NewString()
	source := cfg.SourceRepo
	if source == "Bot" {
		// No CI identity available; fall back to the run ID so shared
		// storage stays attributable.
		source = "run-" + runID[:8]
	}

	surface, err := browser.OpenSurface(runHeadless)
	if err != nil {
		return err
	}
	defer surface.Close()

	fmt.Println(styleBrand.Render("minewatch") + styleLabel.Render(" run "+runID[:8]))

	archiver := archive.NewArchiver(cfg.WebhookURL, cfg.StoreRepo, cfg.StoreToken, source)
	ctrl := lifecycle.New(cfg, surface, archiver)
	ctrl.OnTransition = printTransition
	ctrl.OnQueueEstimate = func(estimate string) {
		fmt.Println(badgeQueue.Render("Queue remaining: " + estimate))
	}

	if err := ctrl.Run(); err != nil {
		fmt.Println(styleError.Render("Run failed: " + err.Error()))
		return err
	}
	fmt.Println(styleSuccess.Render("Server is online."))
	return nil
}

func printTransition(st status.State) {
	if st == status.Unknown {
		return
	}
	fmt.Println(stateStyle(st).Render("Status: " + string(st)))
}
