package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tickersCmd manages the local constituents list
var tickersCmd = &cobra.Command{
	Use:   "tickers",
	Short: "Manage the fallback ticker list",
}

var tickersRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rewrite the fallback list from the current Wikipedia constituents",
	Long: `Scrapes the NASDAQ-100 constituents table and rewrites the local
fallback CSV (TICKER_FALLBACK_FILE). Run this periodically so the pipeline
still works when the scrape is unavailable.`,
	RunE: refreshTickers,
}

func refreshTickers(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	count, err := app.universe.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("refresh tickers: %w", err)
	}

	fmt.Printf("Wrote %d tickers to %s\n", count, app.cfg.Universe.FallbackFile)
	return nil
}

func init() {
	tickersCmd.AddCommand(tickersRefreshCmd)
	rootCmd.AddCommand(tickersCmd)
}
