package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/hunter/internal/api"
	"github.com/wonny/hunter/internal/api/handlers"
)

// serveCmd runs the read API together with the scheduler
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read API and the scheduler",
	Long: `Runs an initial pipeline pass, then serves the latest report over
HTTP while the scheduler keeps it fresh.

Endpoints:
  GET /health
  GET /api/report/latest
  GET /api/report/latest.csv
  GET /api/report/summary

Example:
  go run ./cmd/hunter serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	sched, err := buildScheduler(app)
	if err != nil {
		return err
	}

	// Initial pass so the API has a report before the first cron fire.
	// A failure here is not fatal; the scheduler retries on schedule.
	if _, err := app.pipeline.Run(context.Background()); err != nil {
		app.logger.WithError(err).Warn("Initial pipeline run failed, serving empty report")
	}

	router := api.NewRouter(handlers.NewReportHandler(app.store, app.logger), app.logger)
	server := api.New(app.cfg, app.logger, router)

	sched.Start()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		sched.Stop()
		return err
	case <-quit:
	}

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
