package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/hunter/internal/strategy"
)

// strategyCmd manages the strategy threshold file
var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Manage valuation thresholds",
}

var strategyInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default strategy file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := strategy.Default()
		if err := strategy.Write(cfg, args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote default strategy %s to %s\n", cfg.Meta.StrategyID, args[0])
		return nil
	},
}

var strategyCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a strategy file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := strategy.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %s version %s\n", cfg.Meta.StrategyID, cfg.Meta.Version)
		return nil
	},
}

func init() {
	strategyCmd.AddCommand(strategyInitCmd)
	strategyCmd.AddCommand(strategyCheckCmd)
	rootCmd.AddCommand(strategyCmd)
}
