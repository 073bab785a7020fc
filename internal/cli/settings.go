package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/minewatch-io/minewatch/internal/config"
)

var settingsInit bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the active settings",
	Long: `Settings prints the merged settings the next run will use: values from
~/.minewatch/settings.yaml where present, defaults everywhere else.

With --init, the defaults are written to settings.yaml as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsInit, "init", false, "write default settings to settings.yaml")
}

func runSettings(cmd *cobra.Command, args []string) error {
	if settingsInit {
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		if config.FileExists(path) {
			return fmt.Errorf("settings file already exists: %s", path)
		}
		if err := config.SaveSettings(config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Settings written: ") + styleValue.Render(path))
		return nil
	}

	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	printSetting("Panel URL", s.PanelURL)
	printSetting("Server URL", s.ServerURL)
	printSetting("Log URL", s.LogURL)
	printSetting("Poll interval", fmt.Sprintf("%ds", s.PollIntervalSeconds))
	printSetting("Stuck threshold", fmt.Sprintf("%ds", s.StuckThresholdSeconds))
	printSetting("Confirm settle", fmt.Sprintf("%ds", s.ConfirmSettleSeconds))
	printSetting("Login timeout", fmt.Sprintf("%ds", s.LoginTimeoutSeconds))
	printSetting("Bot player", s.BotPlayer)
	printSetting("Default symbol", s.DefaultSymbol)

	players := make([]string, 0, len(s.Symbols))
	for p := range s.Symbols {
		players = append(players, p)
	}
	sort.Strings(players)
	for _, p := range players {
		printSetting("  "+p, s.Symbols[p])
	}
	return nil
}

func printSetting(label, value string) {
	fmt.Println(styleLabel.Render(label+": ") + styleValue.Render(value))
}
