package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	strategyFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hunter",
	Short: "NASDAQ-100 value hunter pipeline",
	Long: `Hunter - NASDAQ-100 valuation pipeline

Fetches fundamentals for the NASDAQ-100 universe, computes value-investing
metrics (PEG, Graham value, sector-relative P/E, margin of safety), and
writes one tabular report per run.

Usage:
  go run ./cmd/hunter [command]

Examples:
  go run ./cmd/hunter run
  go run ./cmd/hunter serve
  go run ./cmd/hunter tickers refresh
  go run ./cmd/hunter strategy check config/strategy.yaml`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&strategyFile, "strategy", "", "strategy YAML file (default from STRATEGY_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
