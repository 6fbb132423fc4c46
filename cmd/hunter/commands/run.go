package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// runCmd executes one pipeline pass and exits
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the valuation pipeline once",
	Long: `Runs one end-to-end pass: resolve the NASDAQ-100 universe, fetch
fundamentals, compute valuations, and write the CSV artifact.

Example:
  go run ./cmd/hunter run
  go run ./cmd/hunter run --strategy config/strategy.yaml`,
	RunE: runOnce,
}

func runOnce(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := app.pipeline.Run(ctx)
	if err != nil {
		app.logger.WithError(err).Error("Pipeline failed")
		return err
	}

	fmt.Printf("Report written: as_of_date=%s securities=%d\n", result.AsOfDate, len(result.Rows))
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
