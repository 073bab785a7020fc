package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minewatch-io/minewatch/internal/config"
	"github.com/minewatch-io/minewatch/internal/gamelog"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <raw-log-file>",
	Short: "Build a connection-time report from a raw log file",
	Long: `Report runs the session aggregation pipeline over an already-captured
raw log file, without touching the panel. Useful for inspecting a staged
snapshot or reprocessing an archived one.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read raw log: %w", err)
	}

	agg := &gamelog.Aggregator{
		BotPlayer:     cfg.BotPlayer,
		Symbols:       cfg.Symbols,
		DefaultSymbol: cfg.DefaultSymbol,
	}
	report := agg.Aggregate(string(raw))
	if report == nil {
		fmt.Println(styleWarning.Render("No player activity found."))
		return nil
	}

	if reportOut != "" {
		if err := report.WriteFile(reportOut); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Report written: ") + styleValue.Render(reportOut))
		return nil
	}

	fmt.Print(report.Render())
	return nil
}
